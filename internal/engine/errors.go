package engine

import (
	"errors"
	"fmt"
)

// ErrNoActiveSubset is returned when a subset-scoped query runs while
// no subset is saved. Callers must not fall back to full-table stats.
var ErrNoActiveSubset = errors.New("no active subset: create one with 'subset ... --save' first")

// DataLoadError wraps any failure to read the survey file.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load survey data from %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// UnknownQuestionError reports a question name absent from the catalog.
type UnknownQuestionError struct {
	Question string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("question %q not found in survey", e.Question)
}
