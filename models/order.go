package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the register.
const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentOnline = "Online"
)

// ValidPayment reports whether method is one of the accepted payment methods.
func ValidPayment(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentOnline:
		return true
	}
	return false
}

// LineItem is one menu selection inside an order. UnitPrice comes from
// the catalog at order time, never from the client. Cost = Quantity * UnitPrice.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
}

// LineItems is stored as a JSON snapshot in the items column. The items
// have no identity outside their parent order.
type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	if len(li) == 0 {
		return nil, errors.New("order has no items")
	}
	raw, err := json.Marshal(li)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (li *LineItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	case nil:
		return errors.New("items column is null")
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// Order is one finalized transaction. ID is the surrogate key that
// defines insertion order; OrderID is the human-facing label.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     string          `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_id"`
	Customer    string          `gorm:"type:varchar(100);not null" json:"customer"`
	TableNo     int             `gorm:"not null" json:"table_no"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	Items       LineItems       `gorm:"type:json;not null" json:"items"`
	DiscountPct int             `gorm:"not null" json:"discount_pct"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Payment     string          `gorm:"type:varchar(20);not null" json:"payment"`
}

func (Order) TableName() string {
	return "orders"
}

// Subtotal sums the line costs before discount.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range o.Items {
		subtotal = subtotal.Add(it.Cost)
	}
	return subtotal
}

// ItemCount sums the quantities across all line items.
func (o *Order) ItemCount() int {
	var n int
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// ComputeTotal applies the discount to the item subtotal and rounds
// half-up to two decimal places. The same function backs the in-memory
// total, the persisted total and the receipt total, so the three can
// never disagree.
func ComputeTotal(items LineItems, discountPct int) decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Cost)
	}
	factor := decimal.NewFromInt(int64(100 - discountPct)).Div(decimal.NewFromInt(100))
	return subtotal.Mul(factor).Round(2)
}

// ValidationError marks input that must be rejected before anything is
// persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
