package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/router"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T) (*gin.Engine, *database.OrderStore) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	store := database.NewOrderStore(db, 5*time.Second)
	require.NoError(t, store.EnsureSchema(context.Background()))

	svc := services.NewOrderService(store, models.DefaultCatalog())
	return router.SetupRouter(svc, models.DefaultCatalog()), store
}

type orderEnvelope struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    models.Order `json:"data"`
}

type historyEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Orders  []models.Order            `json:"orders"`
		Skipped []database.RowDecodeError `json:"skipped"`
	} `json:"data"`
}

func postOrder(t *testing.T, r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderAndDownloadReceipt(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postOrder(t, r, map[string]interface{}{
		"customer_name": "sadia",
		"table_no":      2,
		"items":         map[string]int{"Coffee": 2, "Cake": 1},
		"discount_pct":  10,
		"payment":       "Cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created orderEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Order created", created.Message)
	assert.Equal(t, "sadia", created.Data.Customer)
	assert.Equal(t, "9.00", created.Data.Total.StringFixed(2))
	assert.Equal(t, 3, created.Data.ItemCount())
	require.NotEmpty(t, created.Data.OrderID)

	// Regenerate the receipt from the persisted order.
	req, err := http.NewRequest(http.MethodGet, "/orders/"+created.Data.OrderID+"/receipt", nil)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), created.Data.OrderID)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestCreateOrderRejectsEmptySelection(t *testing.T) {
	r, store := setupTestRouter(t)

	w := postOrder(t, r, map[string]interface{}{
		"customer_name": "a",
		"table_no":      1,
		"items":         map[string]int{"Coffee": 0, "Tea": 0},
		"discount_pct":  0,
		"payment":       "Cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was persisted.
	orders, _, err := store.FetchRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrderRejectsBadDiscount(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postOrder(t, r, map[string]interface{}{
		"customer_name": "a",
		"table_no":      1,
		"items":         map[string]int{"Coffee": 1},
		"discount_pct":  80,
		"payment":       "Cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHistoryNewestFirst(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, customer := range []string{"first", "second", "third"} {
		w := postOrder(t, r, map[string]interface{}{
			"customer_name": customer,
			"table_no":      1,
			"items":         map[string]int{"Tea": 1},
			"discount_pct":  0,
			"payment":       "Card",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req, err := http.NewRequest(http.MethodGet, "/orders?limit=10", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var history historyEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history.Data.Orders, 3)
	assert.Empty(t, history.Data.Skipped)
	assert.Equal(t, "third", history.Data.Orders[0].Customer)
	assert.Equal(t, "second", history.Data.Orders[1].Customer)
	assert.Equal(t, "first", history.Data.Orders[2].Customer)
}

func TestOrderHistoryRejectsBadLimit(t *testing.T) {
	r, _ := setupTestRouter(t)

	req, err := http.NewRequest(http.MethodGet, "/orders?limit=zero", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	req, err := http.NewRequest(http.MethodGet, "/orders/ORD-MISSING", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMenu(t *testing.T) {
	r, _ := setupTestRouter(t)

	req, err := http.NewRequest(http.MethodGet, "/menu", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Contains(t, data, "Drinks")
	assert.Contains(t, data, "Snacks")
	assert.Contains(t, data, "meals")
}
