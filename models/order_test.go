package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(name string, qty int, price string) LineItem {
	p := decimal.RequireFromString(price)
	return LineItem{
		Name:      name,
		Quantity:  qty,
		UnitPrice: p,
		Cost:      p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestComputeTotalScenario(t *testing.T) {
	// 2 x Coffee @ 3.00 + 1 x Cake @ 4.00, 10% off -> 9.00
	items := LineItems{
		item("Coffee", 2, "3.00"),
		item("Cake", 1, "4.00"),
	}

	total := ComputeTotal(items, 10)
	assert.Equal(t, "9.00", total.StringFixed(2))

	order := Order{Items: items, DiscountPct: 10, Total: total}
	assert.Equal(t, "10.00", order.Subtotal().StringFixed(2))
	assert.Equal(t, 3, order.ItemCount())
}

func TestComputeTotalDeterministic(t *testing.T) {
	items := LineItems{
		item("Sandwich", 3, "5.00"),
		item("Tea", 7, "2.50"),
	}

	first := ComputeTotal(items, 35)
	for i := 0; i < 50; i++ {
		assert.True(t, first.Equal(ComputeTotal(items, 35)))
	}
}

func TestComputeTotalBoundaries(t *testing.T) {
	items := LineItems{item("burger", 2, "8.00")}

	assert.Equal(t, "16.00", ComputeTotal(items, 0).StringFixed(2))
	assert.Equal(t, "8.00", ComputeTotal(items, 50).StringFixed(2))
}

func TestComputeTotalRoundsHalfUp(t *testing.T) {
	// 5 x 0.025 = 0.125 -> 0.13 under half-up (banker's would give 0.12)
	items := LineItems{item("penny candy", 5, "0.025")}
	assert.Equal(t, "0.13", ComputeTotal(items, 0).StringFixed(2))

	// 10.01 at 25% off = 7.5075 -> 7.51
	items = LineItems{item("odd", 1, "10.01")}
	assert.Equal(t, "7.51", ComputeTotal(items, 25).StringFixed(2))
}

func TestLineItemsScanRejectsGarbage(t *testing.T) {
	var items LineItems
	assert.Error(t, items.Scan("{not json"))
	assert.Error(t, items.Scan(nil))
	assert.NoError(t, items.Scan(`[{"name":"Tea","qty":1,"price":"2.5","cost":"2.5"}]`))
	assert.Len(t, items, 1)
	assert.Equal(t, "Tea", items[0].Name)
}

func TestLineItemsValueRejectsEmpty(t *testing.T) {
	var items LineItems
	_, err := items.Value()
	assert.Error(t, err)
}

func TestCatalogPriceOf(t *testing.T) {
	catalog := DefaultCatalog()

	price, ok := catalog.PriceOf("Coffee")
	assert.True(t, ok)
	assert.Equal(t, "3.00", price.StringFixed(2))

	price, ok = catalog.PriceOf("fries")
	assert.True(t, ok)
	assert.Equal(t, "3.50", price.StringFixed(2))

	_, ok = catalog.PriceOf("Pizza")
	assert.False(t, ok)
}

func TestValidPayment(t *testing.T) {
	assert.True(t, ValidPayment(PaymentCash))
	assert.True(t, ValidPayment(PaymentCard))
	assert.True(t, ValidPayment(PaymentOnline))
	assert.False(t, ValidPayment("IOU"))
	assert.False(t, ValidPayment(""))
}
