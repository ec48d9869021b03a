package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/models"
)

// OrderService glues the menu catalog, the billing arithmetic and the
// order store behind the controllers.
type OrderService struct {
	Store   *database.OrderStore
	Catalog models.Catalog
}

func NewOrderService(store *database.OrderStore, catalog models.Catalog) *OrderService {
	return &OrderService{Store: store, Catalog: catalog}
}

// BuildOrder prices the selections against the catalog and assembles a
// fully computed order. Pure construction, no I/O: selections with
// quantity zero are dropped, blank customer names become "Guest".
func (s *OrderService) BuildOrder(customer string, tableNo int, selections map[string]int, discountPct int, payment string) (*models.Order, error) {
	if tableNo < 1 {
		return nil, models.NewValidationError("table number must be at least 1, got %d", tableNo)
	}
	if discountPct < 0 || discountPct > 50 {
		return nil, models.NewValidationError("discount must be between 0 and 50, got %d", discountPct)
	}
	if !models.ValidPayment(payment) {
		return nil, models.NewValidationError("unknown payment method %q", payment)
	}

	items := make(models.LineItems, 0, len(selections))
	for name, qty := range selections {
		if qty == 0 {
			continue
		}
		if qty < 0 {
			return nil, models.NewValidationError("negative quantity %d for %q", qty, name)
		}
		price, ok := s.Catalog.PriceOf(name)
		if !ok {
			return nil, models.NewValidationError("unknown menu item %q", name)
		}
		items = append(items, models.LineItem{
			Name:      name,
			Quantity:  qty,
			UnitPrice: price,
			Cost:      price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	if len(items) == 0 {
		return nil, models.NewValidationError("nothing ordered")
	}
	// Map iteration order is random; keep the snapshot stable.
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	customer = strings.TrimSpace(customer)
	if customer == "" {
		customer = "Guest"
	}

	now := time.Now()
	return &models.Order{
		OrderID:     newOrderID(now),
		Customer:    customer,
		TableNo:     tableNo,
		CreatedAt:   now,
		Items:       items,
		DiscountPct: discountPct,
		Total:       models.ComputeTotal(items, discountPct),
		Payment:     payment,
	}, nil
}

// newOrderID keeps the timestamp label for humans; the random suffix
// keeps two registers submitting within the same second from colliding.
// Uniqueness and recency ordering still rest on the surrogate key.
func newOrderID(t time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102150405"), uuid.NewString()[:6])
}

// PlaceOrder builds and persists one order. Exactly one insert; no
// update path exists afterwards.
func (s *OrderService) PlaceOrder(ctx context.Context, customer string, tableNo int, selections map[string]int, discountPct int, payment string) (*models.Order, error) {
	order, err := s.BuildOrder(customer, tableNo, selections, discountPct, payment)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// History lists the most recent orders, newest first.
func (s *OrderService) History(ctx context.Context, limit int) ([]models.Order, []database.RowDecodeError, error) {
	return s.Store.FetchRecent(ctx, limit)
}

// FindOrder looks one order up by its public label.
func (s *OrderService) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.Store.FindByOrderID(ctx, orderID)
}
