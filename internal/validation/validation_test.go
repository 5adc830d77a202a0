package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"restaurant/internal/messages"
)

type signupForm struct {
	Name     string `validate:"required,personname"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,phone10"`
	Password string `validate:"required,password"`
}

type menuForm struct {
	Description string          `validate:"required,description"`
	Price       decimal.Decimal `validate:"money"`
	Quantity    int             `validate:"min=1"`
}

func TestValidator_Signup(t *testing.T) {
	v := New()
	valid := signupForm{Name: "Jane Doe", Email: "jane@example.com", Phone: "9876543210", Password: "secret1"}

	tests := []struct {
		name    string
		mutate  func(f *signupForm)
		wantMsg string
	}{
		{"valid", func(f *signupForm) {}, ""},
		{"missing name", func(f *signupForm) { f.Name = "" }, messages.RequiredFields},
		{"name with digits", func(f *signupForm) { f.Name = "J4ne" }, messages.ValidationName},
		{"bad email", func(f *signupForm) { f.Email = "jane@" }, messages.ValidationEmail},
		{"short phone", func(f *signupForm) { f.Phone = "12345" }, messages.ValidationPhone},
		{"letters only password", func(f *signupForm) { f.Password = "secretpw" }, messages.ValidationPassword},
		{"short password", func(f *signupForm) { f.Password = "ab1" }, messages.ValidationPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			err := v.Struct(form)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantMsg, Message(err))
		})
	}
}

func TestValidator_Menu(t *testing.T) {
	v := New()

	ok := menuForm{Description: "A hearty bowl of soup", Price: decimal.RequireFromString("12.50"), Quantity: 1}
	assert.NoError(t, v.Struct(ok))

	negative := ok
	negative.Price = decimal.RequireFromString("-1")
	assert.Equal(t, messages.ValidationPrice, Message(v.Struct(negative)))

	precise := ok
	precise.Price = decimal.RequireFromString("1.005")
	assert.Equal(t, messages.ValidationPrice, Message(v.Struct(precise)))

	short := ok
	short.Description = "tiny"
	assert.Equal(t, messages.ValidationDesc, Message(v.Struct(short)))

	zeroQty := ok
	zeroQty.Quantity = 0
	assert.Equal(t, messages.InvalidQuantity, Message(v.Struct(zeroQty)))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("abc123"))
	assert.False(t, IsStrongPassword("abc12"))
	assert.False(t, IsStrongPassword("123456"))
	assert.False(t, IsStrongPassword("abc 123"))
}
