package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

func rbacContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestRBAC_AllowsListedRoles(t *testing.T) {
	handler := RBAC(domain.RoleShipper, domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, role := range []string{domain.RoleShipper, domain.RoleAdmin} {
		c, rec := rbacContext(role)
		if err := handler(c); err != nil {
			t.Fatalf("%s: handler returned error: %v", role, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("%s: want 200, got %d", role, rec.Code)
		}
	}
}

func TestRBAC_RejectsOtherRoles(t *testing.T) {
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, role := range []string{domain.RoleShipper, domain.RoleCarrier, "unknown"} {
		c, rec := rbacContext(role)
		if err := handler(c); err != nil {
			t.Fatalf("%s: handler returned error: %v", role, err)
		}
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s: want 403, got %d", role, rec.Code)
		}
	}
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	handler := RBAC(domain.RoleShipper)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c, rec := rbacContext("")
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("want 403, got %d", rec.Code)
	}
}
