package engine

import (
	"sort"
	"strings"
)

// QuestionType classifies how a question's answers are encoded.
type QuestionType string

const (
	// SingleChoice: one atomic value per respondent.
	SingleChoice QuestionType = "SC"
	// MultipleChoice: a delimiter-joined list of option tokens.
	MultipleChoice QuestionType = "MC"
)

// DefaultDelimiter separates option tokens inside multiple-choice cells.
const DefaultDelimiter = ";"

// Question is one catalog entry.
type Question struct {
	Name      string
	Type      QuestionType
	Options   []string // distinct options, first-appearance order
	Responses int      // respondents with a non-null answer
}

// Catalog lists the survey's questions with their inferred types and
// observed option sets. Built once per table and read-only afterwards.
type Catalog struct {
	questions []Question
	byName    map[string]int
	delimiter string
}

// BuildCatalog scans every column once and classifies it: a question is
// MultipleChoice iff any non-null value contains the delimiter, else
// SingleChoice. The idColumn (respondent identifier, e.g. "ResponseId")
// is excluded from the catalog but stays in the table.
func BuildCatalog(t *Table, idColumn, delimiter string) *Catalog {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	c := &Catalog{
		byName:    make(map[string]int),
		delimiter: delimiter,
	}

	for _, name := range t.Columns() {
		if name == idColumn {
			continue
		}
		col := t.byName[name]
		q := Question{Name: name, Type: SingleChoice}

		// The dictionary is exactly the set of distinct non-null
		// values, so type inference never rescans the rows.
		for _, v := range col.distinct() {
			if strings.Contains(v, delimiter) {
				q.Type = MultipleChoice
				break
			}
		}

		if q.Type == MultipleChoice {
			seen := make(map[string]bool)
			for _, v := range col.distinct() {
				for _, tok := range strings.Split(v, delimiter) {
					tok = strings.TrimSpace(tok)
					if tok == "" || seen[tok] {
						continue
					}
					seen[tok] = true
					q.Options = append(q.Options, tok)
				}
			}
		} else {
			q.Options = append([]string(nil), col.distinct()...)
		}

		for _, code := range col.codes {
			if code != nullCode {
				q.Responses++
			}
		}

		c.byName[name] = len(c.questions)
		c.questions = append(c.questions, q)
	}
	return c
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int { return len(c.questions) }

// Delimiter returns the multi-choice token delimiter.
func (c *Catalog) Delimiter() string { return c.delimiter }

// Question looks up a catalog entry by name.
func (c *Catalog) Question(name string) (Question, error) {
	i, ok := c.byName[name]
	if !ok {
		return Question{}, &UnknownQuestionError{Question: name}
	}
	return c.questions[i], nil
}

// List returns entries in column order, truncated to limit (0 = all).
func (c *Catalog) List(limit int) []Question {
	if limit <= 0 || limit > len(c.questions) {
		limit = len(c.questions)
	}
	return c.questions[:limit]
}

// Search returns questions whose name contains keyword,
// case-insensitively, in original column order.
func (c *Catalog) Search(keyword string) []Question {
	needle := strings.ToLower(keyword)
	var matches []Question
	for _, q := range c.questions {
		if strings.Contains(strings.ToLower(q.Name), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}

// SearchOptions returns the question's options containing keyword,
// case-insensitively, sorted alphabetically.
func (c *Catalog) SearchOptions(question, keyword string) ([]string, error) {
	q, err := c.Question(question)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(keyword)
	var matches []string
	for _, opt := range q.Options {
		if strings.Contains(strings.ToLower(opt), needle) {
			matches = append(matches, opt)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
