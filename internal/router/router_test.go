package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/internal/auth"
	"restaurant/internal/config"
	"restaurant/internal/handler"
	"restaurant/internal/messages"
	"restaurant/internal/model"
	"restaurant/internal/notify"
	"restaurant/internal/repository"
	"restaurant/internal/seed"
	"restaurant/internal/service"
	"restaurant/internal/storage"
	"restaurant/internal/testutil"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

type testServer struct {
	e     *echo.Echo
	repos *repository.Repositories
	jwt   *auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	gormDB := testutil.NewDB(t)
	repos := repository.New(gormDB)
	_, err := seed.Run(ctx, repos, "admin@example.com", "admin123")
	require.NoError(t, err)

	cfg := &config.Config{
		CORSAllowedOrigins: []string{"*"},
		RateLimitPerSecond: 1000,
		UploadDir:          t.TempDir(),
		UploadMaxBytes:     1 << 20,
		OrderClearCart:     true,
		BillDiscountRate:   decimal.RequireFromString("0.10"),
	}
	images, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	require.NoError(t, err)

	jwtService := auth.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	tokens := auth.NewTokenStore(nil)
	notifier := notify.NewLogNotifier()
	userService := service.NewUserService(repos.Users, repos.Roles, nil)

	e := echo.New()
	Register(e, cfg, Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(repos.Users, jwtService, tokens, notifier), service.NewOTPService(repos.Users, repos.OTPs, notifier)),
		User:     handler.NewUserHandler(userService),
		Role:     handler.NewRoleHandler(service.NewRoleService(repos.Roles), userService),
		Category: handler.NewCategoryHandler(service.NewCategoryService(repos.Categories)),
		Menu:     handler.NewMenuHandler(service.NewMenuService(repos.Menu, repos.Categories, images, nil, cfg.UploadMaxBytes)),
		Cart:     handler.NewCartHandler(service.NewCartService(repos.Carts, repos.Menu, repos.Users)),
		Order:    handler.NewOrderHandler(service.NewOrderService(repos, cfg.OrderClearCart, notifier)),
		Bill:     handler.NewBillHandler(service.NewBillService(repos.Bills, repos.Orders, cfg.BillDiscountRate)),
		Feedback: handler.NewFeedbackHandler(service.NewFeedbackService(repos.Feedback, repos.Orders)),
		Favorite: handler.NewFavoriteHandler(service.NewFavoriteService(repos.Favorites, repos.Menu, repos.Users)),
		Staff:    handler.NewStaffHandler(service.NewStaffService(repos.Staff)),
		Metrics:  handler.NewMetricsHandler(service.NewMetricsService(repos)),
		Health:   handler.NewHealthHandler(gormDB, nil),
	}, Security{
		JWT:    jwtService,
		Tokens: tokens,
		Access: service.NewAccessService(repos.Roles),
	})

	return &testServer{e: e, repos: repos, jwt: jwtService}
}

func (s *testServer) tokenFor(t *testing.T, email string) string {
	t.Helper()
	user, err := s.repos.Users.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	token, err := s.jwt.GenerateAccessToken(auth.Identity{UserID: user.SlugID, Email: user.Email, Role: user.Role})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestBearerAuthentication(t *testing.T) {
	srv := newTestServer(t)
	expired, err := auth.NewJWTService("test-secret", -time.Minute, time.Hour).
		GenerateAccessToken(auth.Identity{UserID: "u-1", Role: model.RoleAdmin})
	require.NoError(t, err)
	foreign, err := auth.NewJWTService("other-secret", time.Hour, time.Hour).
		GenerateAccessToken(auth.Identity{UserID: "u-1", Role: model.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		wantStatus  int
		wantMessage string
	}{
		{"missing token", "", http.StatusUnauthorized, messages.TokenRequired},
		{"expired token", expired, http.StatusUnauthorized, messages.TokenExpired},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized, messages.InvalidToken},
		{"wrong signature", foreign, http.StatusUnauthorized, messages.InvalidToken},
		{"valid token", srv.tokenFor(t, "admin@example.com"), http.StatusOK, messages.UserFetched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := srv.do(t, http.MethodGet, "/api/v1/user/me", "", tt.token)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	srv := newTestServer(t)
	_, refresh, err := srv.jwt.GenerateRefreshToken(auth.Identity{UserID: "u-1", Role: model.RoleAdmin})
	require.NoError(t, err)

	rec, env := srv.do(t, http.MethodGet, "/api/v1/user/me", "", refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, messages.InvalidToken, env.Message)
}

func TestPermissionEnforcement(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.repos.Users.Create(context.Background(), &model.User{
		Name: "Guest", Email: "guest@example.com", PasswordHash: "x", Role: model.RoleUser,
	}))
	userToken := srv.tokenFor(t, "guest@example.com")
	adminToken := srv.tokenFor(t, "admin@example.com")
	body := `{"name":"Desserts","description":"Sweet things to finish"}`

	rec, env := srv.do(t, http.MethodPost, "/api/v1/category", body, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, messages.InsufficientPermissions, env.Message)

	rec, env = srv.do(t, http.MethodPost, "/api/v1/category", body, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	var category model.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))

	rec, env = srv.do(t, http.MethodGet, "/api/v1/category/slugId/"+category.SlugID, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.CategoryRetrieved, env.Message)

	rec, _ = srv.do(t, http.MethodGet, "/api/v1/staff", "", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"unknown route", http.MethodGet, "/api/v1/nothing-here", "", http.StatusNotFound, messages.NotFound},
		{"malformed json", http.MethodPost, "/api/v1/auth/login", "{", http.StatusBadRequest, messages.BadRequest},
		{"invalid phone", http.MethodPost, "/api/v1/auth/signup",
			`{"name":"Ann Lee","email":"ann@example.com","phone":"123","password":"secret1","confirmPassword":"secret1"}`,
			http.StatusBadRequest, messages.ValidationPhone},
		{"missing fields", http.MethodPost, "/api/v1/auth/login", `{}`, http.StatusBadRequest, messages.RequiredFields},
		{"unknown login", http.MethodPost, "/api/v1/auth/login", `{"email":"nobody@example.com","password":"secret1"}`,
			http.StatusUnauthorized, messages.LoginFailed},
		{"bad numeric id", http.MethodGet, "/api/v1/menu/abc", "", http.StatusBadRequest, messages.InvalidID},
		{"missing menu item", http.MethodGet, "/api/v1/menu/999", "", http.StatusNotFound, messages.MenuItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := srv.do(t, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, "null", string(env.Data))
		})
	}
}

func TestOrderFlow(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.tokenFor(t, "admin@example.com")

	rec, env := srv.do(t, http.MethodPost, "/api/v1/category", `{"name":"Mains","description":"Hearty main courses"}`, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	var category model.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))

	rec, env = srv.do(t, http.MethodPost, "/api/v1/menu",
		`{"name":"Pasta","description":"Fresh pasta with tomato sauce","price":12.50,"categoryId":"`+category.SlugID+`"}`, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	var item model.MenuItem
	require.NoError(t, json.Unmarshal(env.Data, &item))

	rec, env = srv.do(t, http.MethodPost, "/api/v1/auth/signup",
		`{"name":"Ann Lee","email":"ann@example.com","phone":"9876543210","password":"secret1","confirmPassword":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)

	rec, env = srv.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"ann@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	var login handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	userToken := login.AccessToken

	rec, env = srv.do(t, http.MethodPost, "/api/v1/cart/add", `{"menuItemId":"`+item.SlugID+`","quantity":2}`, userToken)
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)

	rec, env = srv.do(t, http.MethodPost, "/api/v1/orders", `{}`, userToken)
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	var order model.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, "25", order.TotalPrice.String())
	assert.Equal(t, model.OrderStatusPending, order.Status)

	rec, env = srv.do(t, http.MethodPost, "/api/v1/orders", `{}`, userToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.CartEmpty, env.Message)

	billBody := `{"orderId":"` + order.ID.String() + `","paymentMode":"card","discount":true}`
	rec, _ = srv.do(t, http.MethodPost, "/api/v1/bills", billBody, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = srv.do(t, http.MethodPost, "/api/v1/bills", billBody, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	var bill model.Bill
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	assert.Equal(t, "2.5", bill.DiscountAmount.String())
	assert.Equal(t, "22.5", bill.TotalPrice.String())
	assert.Equal(t, login.User.SlugID, bill.UserID)

	rec, env = srv.do(t, http.MethodPut, "/api/v1/orders/"+order.ID.String(), `{"status":"Completed"}`, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	rec, env = srv.do(t, http.MethodPut, "/api/v1/orders/"+order.ID.String(), `{"status":"Cancelled"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.InvalidStatusChange, env.Message)

	rec, env = srv.do(t, http.MethodGet, "/api/v1/orders/"+login.User.SlugID, "", userToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []model.OrderDetail
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	require.NotNil(t, orders[0].Items[0].MenuItem)
	assert.Equal(t, "Pasta", orders[0].Items[0].MenuItem.Name)

	rec, _ = srv.do(t, http.MethodGet, "/api/v1/bills/export", "", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
}

func TestMenuPagination(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.tokenFor(t, "admin@example.com")

	rec, env := srv.do(t, http.MethodPost, "/api/v1/category", `{"name":"Soups","description":"Warm bowls of soup"}`, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	var category model.Category
	require.NoError(t, json.Unmarshal(env.Data, &category))

	for _, name := range []string{"Tomato Soup", "Onion Soup", "Lentil Soup"} {
		rec, env = srv.do(t, http.MethodPost, "/api/v1/menu",
			`{"name":"`+name+`","description":"A bowl of `+name+`","price":"6.00","categoryId":"`+category.SlugID+`"}`, adminToken)
		require.Equal(t, http.StatusCreated, rec.Code, env.Message)
	}

	rec, env = srv.do(t, http.MethodGet, "/api/v1/menu/get/page-order?limit=2&sort=desc", "", "")
	require.Equal(t, http.StatusOK, rec.Code, env.Message)
	var page service.MenuPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Tomato Soup", page.Items[0].Name)
	assert.Equal(t, int64(3), page.Pagination.TotalDocuments)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, 1, page.Pagination.RemainingPages)

	rec, env = srv.do(t, http.MethodGet, "/api/v1/menu/get/page?page=0", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, messages.BadRequest, env.Message)
}
