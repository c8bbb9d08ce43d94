package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	rec := httptest.NewRecorder()
	Render(rec, http.StatusOK, "home.tmpl", struct{ Title string }{"Storefront"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Storefront")
}

// A template failure must surface as a 500, never a 200 with a partial
// page.
func TestRenderFailureIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	Render(rec, http.StatusOK, "no_such_page.tmpl", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "No such customer")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No such customer")
}
