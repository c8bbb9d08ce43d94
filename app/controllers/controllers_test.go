package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/internal/server"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestApp wires an in-memory database, seeds it, and returns the full
// middleware-wrapped handler plus the seeded customer ids.
func newTestApp(t *testing.T) (http.Handler, map[string]uint) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	beans := models.Product{Name: "Espresso Beans", Price: decimal.RequireFromString("10.00"), Inventory: 100}
	require.NoError(t, db.Create(&beans).Error)

	anna := models.Customer{FirstName: "Anna", LastName: "Abel", Email: "anna@example.com"}
	bruno := models.Customer{FirstName: "Bruno", LastName: "Berg", Email: "bruno@example.com"}
	require.NoError(t, db.Create(&anna).Error)
	require.NoError(t, db.Create(&bruno).Error)

	// Anna spends 30.00, Bruno 50.00. Only Bruno clears the threshold.
	annaOrder := models.Order{CustomerID: anna.ID, Items: []models.OrderItem{
		{ProductID: beans.ID, Quantity: 3, Price: beans.Price},
	}}
	brunoOrder := models.Order{CustomerID: bruno.ID, Items: []models.OrderItem{
		{ProductID: beans.ID, Quantity: 5, Price: beans.Price},
	}}
	require.NoError(t, db.Create(&annaOrder).Error)
	require.NoError(t, db.Create(&brunoOrder).Error)

	ids := map[string]uint{"anna": anna.ID, "bruno": bruno.ID}
	return server.NewRouter().Handler(), ids
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPagesRender(t *testing.T) {
	h, _ := newTestApp(t)

	for _, path := range []string{
		"/",
		"/customers",
		"/products",
		"/customers_with_orders",
		"/customer_revenue",
		"/best_selling_products",
		"/high_spending_customers",
		"/questions",
	} {
		rec := get(t, h, path)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", "GET %s", path)
	}
}

func TestCustomersPageListsOrderCounts(t *testing.T) {
	h, _ := newTestApp(t)

	rec := get(t, h, "/customers")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Anna")
	assert.Contains(t, body, "Bruno")
	assert.Contains(t, body, "bruno@example.com")
}

func TestOrderDetailsPage(t *testing.T) {
	h, ids := newTestApp(t)

	rec := get(t, h, fmt.Sprintf("/orders/%d", ids["bruno"]))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Bruno Berg")
	assert.Contains(t, body, "Espresso Beans")
	assert.Contains(t, body, "50.00")
}

func TestOrderDetailsUnknownCustomerIs404(t *testing.T) {
	h, _ := newTestApp(t)

	rec := get(t, h, "/orders/4242")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No such customer")
}

func TestOrderDetailsBadIDIs404(t *testing.T) {
	h, _ := newTestApp(t)

	rec := get(t, h, "/orders/not-a-number")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHighSpendingCustomersPage(t *testing.T) {
	h, _ := newTestApp(t)

	rec := get(t, h, "/high_spending_customers")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Bruno Berg")
	assert.NotContains(t, body, "Anna Abel")
}

func TestQuestionsDetailPage(t *testing.T) {
	h, _ := newTestApp(t)

	rec := get(t, h, "/questions/sql_database_queries")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SQL")
}

func TestQuestionsDetailUnknownSlug(t *testing.T) {
	h, _ := newTestApp(t)

	rec := get(t, h, "/questions/no_such_section")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Questions and Answers")
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestApp(t)

	// Generate one request first so counters exist.
	get(t, h, "/")

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_requests_total")
}
