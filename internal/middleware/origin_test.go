package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithOrigin(t *testing.T, origin string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/verify-order", nil)
	if origin != "" {
		req.Header.Set(echo.HeaderOrigin, origin)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := OriginAllowList([]string{"http://localhost:3000", "https://paiement-service.fr"})
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return mw(next)(c)
}

func TestOriginAllowList(t *testing.T) {
	assert.NoError(t, callWithOrigin(t, "https://paiement-service.fr"))

	// No Origin header (curl, mobile apps) passes through.
	assert.NoError(t, callWithOrigin(t, ""))

	err := callWithOrigin(t, "https://evil.example")
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
