package assessing

import (
	"errors"
	"fmt"
)

var (
	ErrAdNotFound       = errors.New("ad has no history")
	ErrLoadHistory      = errors.New("error loading ad history")
	ErrListAds          = errors.New("error listing ads")
	ErrSaveAssessment   = errors.New("error saving assessment")
	ErrListAssessments  = errors.New("error listing assessments")
	ErrEmptyHistoryBody = errors.New("no records to evaluate")
)

// AssessmentError é um erro com o anúncio envolvido e o código da API
type AssessmentError struct {
	Err     error
	Code    string
	AdName  string
	Details string
}

func (e *AssessmentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AssessmentError) Unwrap() error {
	return e.Err
}

func NewAssessmentError(err error, code, adName, details string) *AssessmentError {
	return &AssessmentError{
		Err:     err,
		Code:    code,
		AdName:  adName,
		Details: details,
	}
}
