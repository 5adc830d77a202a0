package router

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"restaurant/internal/auth"
	"restaurant/internal/config"
	"restaurant/internal/handler"
	appmw "restaurant/internal/middleware"
	"restaurant/internal/service"
	"restaurant/internal/validation"
)

// Handlers bundles every HTTP handler served by the API.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Role     *handler.RoleHandler
	Category *handler.CategoryHandler
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Bill     *handler.BillHandler
	Feedback *handler.FeedbackHandler
	Favorite *handler.FavoriteHandler
	Staff    *handler.StaffHandler
	Metrics  *handler.MetricsHandler
	Health   *handler.HealthHandler
}

// Security carries what the bearer and permission middleware need.
type Security struct {
	JWT    *auth.JWTService
	Tokens auth.TokenStoreInterface
	Access service.AccessService
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, sec Security) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Validator = &CustomValidator{validator: validation.New()}

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(bodyLimit(cfg.UploadMaxBytes)))

	e.GET("/healthz", h.Health.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	requireAuth := appmw.JWT(sec.JWT, sec.Tokens)
	can := func(resource string) echo.MiddlewareFunc {
		return appmw.RequirePermission(sec.Access, resource)
	}
	limited := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitPerSecond)))

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth", limited)
	authGroup.POST("/signup", h.Auth.Signup)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.POST("/logout", h.Auth.Logout, requireAuth)
	authGroup.POST("/forgot-password", h.Auth.ForgotPassword)
	authGroup.POST("/reset-password", h.Auth.ResetPassword)

	otp := api.Group("/otp", limited)
	otp.POST("/request-otp", h.Auth.RequestOTP)
	otp.POST("/verify-otp", h.Auth.VerifyOTP)

	user := api.Group("/user", requireAuth)
	user.GET("/me", h.User.Me)
	user.GET("/get/list", h.User.ListUsers)
	user.GET("/get/email", h.User.GetUserByEmail)
	user.GET("/slugId/:slugId", h.User.GetUserBySlug)
	user.GET("/:id", h.User.GetUser)
	user.PUT("", h.User.UpdateUser)
	user.DELETE("/:id", h.User.DeleteUser)

	roles := api.Group("/roles", requireAuth, can("roles"))
	roles.POST("/add", h.Role.AddRole)
	roles.POST("/permissions/add", h.Role.AddPermission)
	roles.POST("/assign-permission", h.Role.AssignPermission)
	roles.POST("/assign-user", h.Role.AssignUserRole)
	roles.GET("/list", h.Role.ListRoles)
	roles.GET("/permissions/list", h.Role.ListPermissions)

	category := api.Group("/category")
	category.GET("", h.Category.ListCategories)
	category.GET("/:id", h.Category.GetCategory)
	category.GET("/slugId/:slugId", h.Category.GetCategoryBySlug)
	category.POST("", h.Category.CreateCategory, requireAuth, can("category"))
	category.PUT("", h.Category.UpdateCategory, requireAuth, can("category"))
	category.DELETE("/:id", h.Category.DeleteCategory, requireAuth, can("category"))

	menu := api.Group("/menu")
	menu.GET("", h.Menu.ListMenuItems)
	menu.GET("/all", h.Menu.ListMenuWithCategory)
	menu.GET("/all/list", h.Menu.ListMenuWithCategory)
	menu.GET("/get/page", h.Menu.PageMenu)
	menu.GET("/get/page-order", h.Menu.PageMenuOrdered)
	menu.GET("/slugId/:slugId", h.Menu.GetMenuItemBySlug)
	menu.GET("/category/:id", h.Menu.ListMenuByCategory)
	menu.GET("/:id", h.Menu.GetMenuItem)
	menu.POST("", h.Menu.CreateMenuItem, requireAuth, can("menu"))
	menu.POST("/upload", h.Menu.UploadMenuImage, requireAuth, can("menu"))
	menu.POST("/import", h.Menu.ImportMenu, requireAuth, can("menu"))
	menu.PUT("", h.Menu.UpdateMenuItem, requireAuth, can("menu"))
	menu.DELETE("/:id", h.Menu.DeleteMenuItem, requireAuth, can("menu"))

	cart := api.Group("/cart", requireAuth)
	cart.POST("/add", h.Cart.AddToCart)
	cart.GET("/all", h.Cart.ListCart)
	cart.GET("/all/list", h.Cart.ListCartDetailed)
	cart.GET("/slugId/:slugId", h.Cart.GetCartEntry)
	cart.GET("/user/menu/:slugId", h.Cart.GetCartEntryDetail)
	cart.GET("/userId/:userId", h.Cart.ListUserCart)
	cart.PUT("/update", h.Cart.UpdateCartEntry)
	cart.DELETE("/remove/:slugId", h.Cart.RemoveCartEntry)

	orders := api.Group("/orders", requireAuth)
	orders.POST("", h.Order.PlaceOrder)
	orders.GET("/:userId", h.Order.ListUserOrders)
	orders.PUT("/:orderId", h.Order.UpdateOrder, can("orders"))
	orders.DELETE("/:orderId", h.Order.DeleteOrder, can("orders"))

	bills := api.Group("/bills", requireAuth, can("bills"))
	bills.POST("", h.Bill.GenerateBill)
	bills.GET("", h.Bill.ListBills)
	bills.GET("/export", h.Bill.ExportBills)
	bills.GET("/:billId", h.Bill.GetBill)
	bills.PUT("/:billId", h.Bill.UpdateBill)
	bills.DELETE("/:billId", h.Bill.DeleteBill)

	feedback := api.Group("/feedback", requireAuth)
	feedback.POST("", h.Feedback.CreateFeedback)
	feedback.GET("", h.Feedback.ListFeedback)
	feedback.GET("/:feedbackId", h.Feedback.GetFeedback)
	feedback.PUT("/:feedbackId", h.Feedback.UpdateFeedback)
	feedback.DELETE("/:feedbackId", h.Feedback.DeleteFeedback)
	feedback.POST("/:feedbackId/like", h.Feedback.LikeFeedback)
	feedback.POST("/:feedbackId/dislike", h.Feedback.DislikeFeedback)

	favorites := api.Group("/favorites", requireAuth)
	favorites.POST("", h.Favorite.AddFavorite)
	favorites.GET("/:userId", h.Favorite.ListFavorites)
	favorites.DELETE("/:favoriteId", h.Favorite.DeleteFavorite)
	favorites.DELETE("/clear/:userId", h.Favorite.ClearFavorites)

	staff := api.Group("/staff", requireAuth, can("staff"))
	staff.POST("", h.Staff.CreateStaff)
	staff.GET("", h.Staff.ListStaff)
	staff.GET("/:staffId", h.Staff.GetStaff)
	staff.PUT("/:staffId", h.Staff.UpdateStaff)
	staff.DELETE("/:staffId", h.Staff.DeleteStaff)

	metrics := api.Group("/performance-metrics", requireAuth, can("metrics"))
	metrics.POST("", h.Metrics.CreateSnapshot)
	metrics.GET("", h.Metrics.LatestSnapshot)
}

// bodyLimit leaves headroom over the upload size for the multipart envelope.
func bodyLimit(uploadMaxBytes int64) string {
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = 5 << 20
	}
	return strconv.FormatInt(uploadMaxBytes+(1<<20), 10)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
