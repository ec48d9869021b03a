package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafe-pos/models"
)

const defaultHistoryLimit = 100

// OrderStore persists orders against whichever relational backend the
// gorm handle was opened on. Every operation runs under the configured
// timeout and translates backend errors into typed ones.
type OrderStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewOrderStore(db *gorm.DB, timeout time.Duration) *OrderStore {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &OrderStore{db: db, timeout: timeout}
}

func (s *OrderStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// EnsureSchema creates the orders table if absent. Safe to call on
// every process start.
func (s *OrderStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).AutoMigrate(&models.Order{}); err != nil {
		return &PersistenceError{Op: "migrate", Err: err}
	}
	return nil
}

// Insert writes one order as a single atomic row. The total is
// re-verified against the line items first; the store never trusts a
// caller-supplied total.
func (s *OrderStore) Insert(ctx context.Context, order *models.Order) error {
	if len(order.Items) == 0 {
		return models.NewValidationError("order %s has no items", order.OrderID)
	}
	if want := models.ComputeTotal(order.Items, order.DiscountPct); !order.Total.Equal(want) {
		return models.NewValidationError("order %s total %s does not match computed %s",
			order.OrderID, order.Total, want)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return &PersistenceError{Op: "insert", Err: err}
	}
	return nil
}

// orderRow scans items as raw text so one undecodable row cannot abort
// a whole listing.
type orderRow struct {
	ID          uint
	OrderID     string
	Customer    string
	TableNo     int
	CreatedAt   time.Time
	Items       string
	DiscountPct int
	Total       decimal.Decimal
	Payment     string
}

// FetchRecent returns up to limit orders, newest insertion first.
// Ordering follows the surrogate key, not the order_id label. Rows
// whose items fail to decode come back as RowDecodeError entries
// alongside the good rows.
func (s *OrderStore) FetchRecent(ctx context.Context, limit int) ([]models.Order, []RowDecodeError, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []orderRow
	if err := s.db.WithContext(ctx).
		Table("orders").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, nil, &PersistenceError{Op: "fetch recent", Err: err}
	}

	orders := make([]models.Order, 0, len(rows))
	var skipped []RowDecodeError
	for _, r := range rows {
		var items models.LineItems
		if err := json.Unmarshal([]byte(r.Items), &items); err != nil {
			skipped = append(skipped, RowDecodeError{RowID: r.ID, OrderID: r.OrderID, Reason: err.Error()})
			continue
		}
		if len(items) == 0 {
			skipped = append(skipped, RowDecodeError{RowID: r.ID, OrderID: r.OrderID, Reason: "empty items"})
			continue
		}
		orders = append(orders, models.Order{
			ID:          r.ID,
			OrderID:     r.OrderID,
			Customer:    r.Customer,
			TableNo:     r.TableNo,
			CreatedAt:   r.CreatedAt,
			Items:       items,
			DiscountPct: r.DiscountPct,
			Total:       r.Total,
			Payment:     r.Payment,
		})
	}
	return orders, skipped, nil
}

// FindByOrderID fetches one order by its public label, for receipt
// regeneration.
func (s *OrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var order models.Order
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "find", Err: ErrOrderNotFound}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	return &order, nil
}
