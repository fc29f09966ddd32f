package importing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

var (
	ErrUnsupportedSource = errors.New("unsupported import source")
	ErrMissingColumns    = errors.New("missing required columns")
	ErrUnreadableFile    = errors.New("file could not be read")
	ErrSaveRecords       = errors.New("error saving imported records")
	ErrListImports       = errors.New("error listing imports")
)

// ImportError carrega a origem do arquivo e o código da API
type ImportError struct {
	Err     error
	Code    string
	Source  domain.ImportSource
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Source, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Source)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, source domain.ImportSource, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Source:  source,
		Details: details,
	}
}
