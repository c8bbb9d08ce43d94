package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/orders/{customerID}", "order_details", ok)

	path, found := r.Path("order_details")
	require.True(t, found)
	assert.Equal(t, "/orders/{customerID}", path)

	_, found = r.Path("missing")
	assert.False(t, found)
}

func TestURL(t *testing.T) {
	r := New()
	r.Get("/orders/{customerID}", "order_details", ok)

	url, err := r.URL("order_details", map[string]string{"customerID": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/orders/7", url)

	_, err = r.URL("order_details", nil)
	assert.Error(t, err, "unfilled parameters must be rejected")

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestParam(t *testing.T) {
	r := New()

	var got string
	r.Get("/orders/{customerID}", "order_details", func(w http.ResponseWriter, req *http.Request) {
		got = Param(req, "customerID")
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", got)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/customers", "customer_overview", ok)
	r.HandleFunc("/metrics", ok)

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/customers", Name: "customer_overview"}, infos[0])
	assert.Equal(t, "", infos[1].Name)
}

func TestGroupPrefix(t *testing.T) {
	r := New()
	g := r.Group("/admin")
	g.Get("/reports", "admin_reports", ok)

	path, found := r.Path("admin_reports")
	require.True(t, found)
	assert.Equal(t, "/admin/reports", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reports", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareOrder(t *testing.T) {
	r := New()

	var trace []string
	mw := func(label string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				trace = append(trace, label)
				next.ServeHTTP(w, req)
			})
		}
	}

	r.Use(mw("outer"), mw("inner"))
	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		trace = append(trace, "handler")
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, trace)
}
