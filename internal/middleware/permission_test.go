package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"restaurant/internal/auth"
	apperrors "restaurant/internal/errors"
)

type stubAccess struct {
	allowed  map[string]bool
	resource string
	method   string
}

func (s *stubAccess) Authorize(_ context.Context, role, resource, method string) error {
	s.resource, s.method = resource, method
	if role == "" {
		return apperrors.ErrNoRoleAssigned
	}
	if !s.allowed[role] {
		return apperrors.ErrInsufficientPermission
	}
	return nil
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name     string
		claims   *auth.Claims
		wantErr  error
		wantNext bool
	}{
		{"allowed role", &auth.Claims{Role: "admin"}, nil, true},
		{"denied role", &auth.Claims{Role: "user"}, apperrors.ErrInsufficientPermission, false},
		{"no claims", nil, apperrors.ErrNoRoleAssigned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := &stubAccess{allowed: map[string]bool{"admin": true}}
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/menu/1", nil), httptest.NewRecorder())
			if tt.claims != nil {
				c.Set(ClaimsKey, tt.claims)
			}

			called := false
			err := RequirePermission(access, "menu")(func(echo.Context) error {
				called = true
				return nil
			})(c)

			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.wantNext, called)
			assert.Equal(t, "menu", access.resource)
			assert.Equal(t, http.MethodDelete, access.method)
		})
	}
}

func TestIdentityFrom(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, auth.Identity{}, IdentityFrom(c))

	c.Set(ClaimsKey, &auth.Claims{UserID: "u-1", Email: "a@example.com", Role: "staff"})
	assert.Equal(t, auth.Identity{UserID: "u-1", Email: "a@example.com", Role: "staff"}, IdentityFrom(c))
}
