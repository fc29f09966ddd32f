package reconciling

import (
	"errors"
	"fmt"
)

var (
	ErrFetchOrders        = errors.New("error fetching orders")
	ErrFetchShipments     = errors.New("error fetching shipments")
	ErrSaveUnifiedOrders  = errors.New("error saving reconciled orders")
	ErrFetchUnifiedOrders = errors.New("error fetching reconciled orders")
)

// ReconciliationError é um erro da conciliação com o código da API
type ReconciliationError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReconciliationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

func NewReconciliationError(err error, code string, details string) *ReconciliationError {
	return &ReconciliationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
