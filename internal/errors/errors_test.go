package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant/internal/messages"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", ErrInvalidQuantity, http.StatusBadRequest, "INVALID_QUANTITY", messages.InvalidQuantity},
		{"conflict", ErrEmailExists, http.StatusBadRequest, "EMAIL_EXISTS", messages.EmailExists},
		{"business rule", ErrCartEmpty, http.StatusBadRequest, "CART_EMPTY", messages.CartEmpty},
		{"not found", ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND", messages.OrderNotFound},
		{"authentication", ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED", messages.TokenExpired},
		{"authorization", ErrInsufficientPermission, http.StatusForbidden, "INSUFFICIENT_PERMISSION", messages.InsufficientPermissions},
		{"wrapped", fmt.Errorf("place order: %w", ErrMenuItemUnpriced), http.StatusBadRequest, "MENU_ITEM_UNPRICED", messages.MenuItemUnpriced},
		{"validation message", Validation(messages.ValidationPhone), http.StatusBadRequest, "VALIDATION_ERROR", messages.ValidationPhone},
		{"unclassified", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", messages.InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)

			resp := httpErr.ToResponse()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestAppErrorIs(t *testing.T) {
	copied := *ErrUserNotFound
	assert.True(t, errors.Is(&copied, ErrUserNotFound))
	assert.True(t, errors.Is(fmt.Errorf("lookup: %w", ErrUserNotFound), ErrUserNotFound))
	assert.False(t, errors.Is(ErrUserNotFound, ErrRoleNotFound))
	assert.False(t, errors.Is(errors.New("user not found"), ErrUserNotFound))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("x: %w", ErrBillNotFound)))
	assert.Equal(t, KindAuthorization, KindOf(ErrNoRoleAssigned))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}
