package errors

import (
	"errors"
	"net/http"

	"restaurant/internal/messages"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuthentication
	KindAuthorization
	KindBusinessRule
)

// AppError is a domain error carrying a stable code and a client-safe message.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches errors by code so copies of a sentinel compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// New creates an AppError.
func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Validation creates a validation error with a catalog message.
func Validation(message string) *AppError {
	return New(KindValidation, "VALIDATION_ERROR", message)
}

// Generic and validation errors.
var (
	ErrInternal        = New(KindInternal, "INTERNAL_ERROR", messages.InternalServerError)
	ErrBadRequest      = New(KindValidation, "BAD_REQUEST", messages.BadRequest)
	ErrInvalidID       = New(KindValidation, "INVALID_ID", messages.InvalidID)
	ErrEmailRequired   = New(KindValidation, "EMAIL_REQUIRED", messages.EmailRequired)
	ErrInvalidRole     = New(KindValidation, "INVALID_ROLE", messages.InvalidRole)
	ErrInvalidQuantity = New(KindValidation, "INVALID_QUANTITY", messages.InvalidQuantity)
	ErrInvalidImage    = New(KindValidation, "INVALID_IMAGE", messages.InvalidImage)
	ErrImageTooLarge   = New(KindValidation, "IMAGE_TOO_LARGE", messages.ImageTooLarge)
	ErrInvalidWorkbook = New(KindValidation, "INVALID_WORKBOOK", messages.InvalidWorkbook)
)

// Not found.
var (
	ErrUserNotFound      = New(KindNotFound, "USER_NOT_FOUND", messages.UserNotFound)
	ErrRoleNotFound      = New(KindNotFound, "ROLE_NOT_FOUND", messages.RoleNotFound)
	ErrUnknownPermission = New(KindNotFound, "PERMISSION_UNKNOWN", messages.PermissionNotFound)
	ErrCategoryNotFound  = New(KindNotFound, "CATEGORY_NOT_FOUND", messages.CategoryNotFound)
	ErrMenuItemNotFound  = New(KindNotFound, "MENU_ITEM_NOT_FOUND", messages.MenuItemNotFound)
	ErrCartItemNotFound  = New(KindNotFound, "CART_ITEM_NOT_FOUND", messages.CartItemNotFound)
	ErrOrderNotFound     = New(KindNotFound, "ORDER_NOT_FOUND", messages.OrderNotFound)
	ErrBillNotFound      = New(KindNotFound, "BILL_NOT_FOUND", messages.BillNotFound)
	ErrFeedbackNotFound  = New(KindNotFound, "FEEDBACK_NOT_FOUND", messages.FeedbackNotFound)
	ErrFavoriteNotFound  = New(KindNotFound, "FAVORITE_NOT_FOUND", messages.FavoriteNotFound)
	ErrStaffNotFound     = New(KindNotFound, "STAFF_NOT_FOUND", messages.StaffNotFound)
	ErrMetricsNotFound   = New(KindNotFound, "METRICS_NOT_FOUND", messages.MetricsNotFound)
)

// Uniqueness conflicts.
var (
	ErrEmailExists          = New(KindConflict, "EMAIL_EXISTS", messages.EmailExists)
	ErrRoleExists           = New(KindConflict, "ROLE_EXISTS", messages.RoleExists)
	ErrPermissionExists     = New(KindConflict, "PERMISSION_EXISTS", messages.PermissionExists)
	ErrRolePermissionExists = New(KindConflict, "ROLE_PERMISSION_EXISTS", messages.RolePermissionExists)
	ErrCategoryNameExists   = New(KindConflict, "CATEGORY_NAME_EXISTS", messages.CategoryNameExists)
	ErrMenuNameExists       = New(KindConflict, "MENU_NAME_EXISTS", messages.MenuNameExists)
	ErrFavoriteExists       = New(KindConflict, "FAVORITE_EXISTS", messages.FavoriteAlreadyExists)
)

// Authentication.
var (
	ErrTokenMissing        = New(KindAuthentication, "TOKEN_MISSING", messages.TokenRequired)
	ErrTokenExpired        = New(KindAuthentication, "TOKEN_EXPIRED", messages.TokenExpired)
	ErrTokenInvalid        = New(KindAuthentication, "TOKEN_INVALID", messages.InvalidToken)
	ErrInvalidCredentials  = New(KindAuthentication, "INVALID_CREDENTIALS", messages.LoginFailed)
	ErrInvalidRefreshToken = New(KindAuthentication, "INVALID_REFRESH_TOKEN", messages.InvalidRefreshToken)
)

// Authorization.
var (
	ErrNoRoleAssigned          = New(KindAuthorization, "NO_ROLE_ASSIGNED", messages.NoRoleFound)
	ErrInvalidPermissionMethod = New(KindAuthorization, "INVALID_PERMISSION_METHOD", messages.InvalidPermissionMethod)
	ErrPermissionNotFound      = New(KindAuthorization, "PERMISSION_NOT_FOUND", messages.PermissionNotFound)
	ErrInsufficientPermission  = New(KindAuthorization, "INSUFFICIENT_PERMISSION", messages.InsufficientPermissions)
)

// Business rules.
var (
	ErrPasswordMismatch        = New(KindBusinessRule, "PASSWORD_MISMATCH", messages.PasswordNotMatch)
	ErrInvalidResetToken       = New(KindBusinessRule, "INVALID_RESET_TOKEN", messages.InvalidResetToken)
	ErrOTPNotFound             = New(KindBusinessRule, "OTP_NOT_FOUND", messages.InvalidOTP)
	ErrOTPExpired              = New(KindBusinessRule, "OTP_EXPIRED", messages.ExpiredOTP)
	ErrCartEmpty               = New(KindBusinessRule, "CART_EMPTY", messages.CartEmpty)
	ErrMenuItemUnpriced        = New(KindBusinessRule, "MENU_ITEM_UNPRICED", messages.MenuItemUnpriced)
	ErrInvalidTotal            = New(KindBusinessRule, "INVALID_TOTAL", messages.InvalidTotal)
	ErrInvalidStatusTransition = New(KindBusinessRule, "INVALID_STATUS_TRANSITION", messages.InvalidStatusChange)
)

// Response is the uniform envelope for every API response.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToResponse() Response {
	return Response{
		StatusCode: e.StatusCode,
		Message:    e.Message,
	}
}

// StatusFor returns the HTTP status for an error kind.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict, KindBusinessRule:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything that is not an AppError is internal.
func MapErrorToHTTP(err error) *HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return NewHTTPError(StatusFor(appErr.Kind), appErr.Message, appErr.Code)
	}
	return NewHTTPError(http.StatusInternalServerError, ErrInternal.Message, ErrInternal.Code)
}

// KindOf reports the kind of err, KindInternal when unclassified.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
