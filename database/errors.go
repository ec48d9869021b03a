package database

import (
	"errors"
	"fmt"
)

var ErrOrderNotFound = errors.New("order not found")

// PersistenceError is the only shape in which backend failures cross
// the store boundary. Callers decide whether to display or retry; the
// store itself never retries.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RowDecodeError reports a single history row whose stored items could
// not be decoded. The listing that produced it still succeeds.
type RowDecodeError struct {
	RowID   uint   `json:"row_id"`
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

func (e RowDecodeError) Error() string {
	return fmt.Sprintf("order row %d (%s): %s", e.RowID, e.OrderID, e.Reason)
}
