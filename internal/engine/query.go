package engine

import (
	"math"
	"sort"
	"strings"

	"survey-analyzer/internal/models"
)

// Subset is an ordered view of respondent rows matching one
// question/answer predicate. It indexes into the parent table; no row
// data is copied.
type Subset struct {
	Question string
	Answer   string
	rows     []int
}

// Len returns the number of respondents in the subset.
func (s *Subset) Len() int { return len(s.rows) }

// RowIndices returns the matching row positions in table order.
func (s *Subset) RowIndices() []int { return s.rows }

// Filter selects respondents by their answer to one question. For a
// SingleChoice question the cell must equal answer exactly; for a
// MultipleChoice question one of the cell's delimiter-split, trimmed
// tokens must equal it. Zero matches is a valid, non-error result.
func Filter(t *Table, c *Catalog, question, answer string) (*Subset, error) {
	q, err := c.Question(question)
	if err != nil {
		return nil, err
	}
	col := t.byName[question]
	answer = strings.TrimSpace(answer)

	// Match against the dictionary once, then scan codes. Avoids
	// re-splitting the same cell value for every respondent.
	matched := make(map[int32]bool)
	if q.Type == MultipleChoice {
		for id, val := range col.dict {
			for _, tok := range strings.Split(val, c.delimiter) {
				if strings.TrimSpace(tok) == answer {
					matched[int32(id)] = true
					break
				}
			}
		}
	} else if id, ok := col.code(answer); ok {
		matched[id] = true
	}

	sub := &Subset{Question: question, Answer: answer}
	if len(matched) > 0 {
		for row, code := range col.codes {
			if code != nullCode && matched[code] {
				sub.rows = append(sub.rows, row)
			}
		}
	}
	return sub, nil
}

// Distribution counts each option's share of the answers to question,
// over the whole table or, when sub is non-nil, over the subset's rows
// only. SingleChoice counts exact cell values; MultipleChoice splits
// every non-null cell on the delimiter and counts each trimmed token
// per occurrence, so a "Python;Python" cell adds two to Python and a
// row can contribute to several options.
//
// Entries are sorted by descending count, ties by first appearance in
// the data, then truncated to topN (0 = unbounded). Percentages divide
// by the number of non-null answers considered, for both question
// types; when topN cuts entries off, their combined percentage is
// reported as OthersPercentage.
func Distribution(t *Table, c *Catalog, question string, sub *Subset, topN int) (*models.DistributionResult, error) {
	q, err := c.Question(question)
	if err != nil {
		return nil, err
	}
	col := t.byName[question]

	rows := sub.rowsOrAll(t)
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, row := range rows {
		code := col.codes[row]
		if code == nullCode {
			continue
		}
		total++
		val := col.dict[code]
		if q.Type == MultipleChoice {
			for _, tok := range strings.Split(val, c.delimiter) {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if _, seen := counts[tok]; !seen {
					order = append(order, tok)
				}
				counts[tok]++
			}
		} else {
			if _, seen := counts[val]; !seen {
				order = append(order, val)
			}
			counts[val]++
		}
	}

	// order already holds first-appearance order; the stable sort
	// keeps it as the tie-break.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	result := &models.DistributionResult{
		Question: question,
		Type:     string(q.Type),
		Scope:    "full",
		Total:    total,
	}
	if sub != nil {
		result.Scope = "subset"
	}

	shown := len(order)
	if topN > 0 && topN < shown {
		shown = topN
	}
	for _, opt := range order[:shown] {
		result.Entries = append(result.Entries, models.DistributionEntry{
			Option:     opt,
			Count:      counts[opt],
			Percentage: percent(counts[opt], total),
		})
	}
	for _, opt := range order[shown:] {
		result.OthersPercentage += percent(counts[opt], total)
	}
	result.OthersPercentage = round2(result.OthersPercentage)

	return result, nil
}

// rowsOrAll resolves the row set a query runs over.
func (s *Subset) rowsOrAll(t *Table) []int {
	if s != nil {
		return s.rows
	}
	all := make([]int, t.Rows())
	for i := range all {
		all[i] = i
	}
	return all
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
