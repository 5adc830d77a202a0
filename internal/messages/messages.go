// Package messages is the fixed catalog of client-facing response messages.
package messages

// General
const (
	Success             = "Success"
	BadRequest          = "Invalid request data"
	NotFound            = "Resource not found"
	MethodNotAllowed    = "Method not allowed"
	TooManyRequests     = "Too many requests"
	InternalServerError = "An error occurred on the server"
	RequiredFields      = "Required fields cannot be empty."
	InvalidID           = "Invalid id."
)

// Auth and tokens
const (
	TokenRequired        = "Token is required"
	TokenExpired         = "Token has expired"
	InvalidToken         = "Invalid token"
	InvalidRefreshToken  = "Invalid or expired refresh token"
	EmailExists          = "Email already exists."
	PasswordNotMatch     = "Password do not match."
	InvalidRole          = "Invalid role"
	UserSignupSuccess    = "User signup successfully"
	LoginSuccess         = "Login successfully"
	LoginFailed          = "Login failed. Invalid credentials"
	TokenRefreshed       = "Token refreshed successfully"
	LogoutSuccess        = "Logged out successfully"
	ResetLinkSent        = "Password reset link sent."
	PasswordResetSuccess = "Password reset successfully."
	InvalidResetToken    = "Invalid or expired reset token."
)

// Users
const (
	UserNotFound       = "User not found"
	UsersFetched       = "Users fetched successfully"
	UserFetched        = "User fetched successfully"
	EmailRequired      = "Email required"
	UserUpdated        = "User profile updated successfully."
	UserDeleted        = "User profile deleted successfully."
	ValidationName     = "Name is required and must be at least 2 characters long and contain only letters and spaces."
	ValidationEmail    = "Email is not valid."
	ValidationPhone    = "Phone must be exactly 10 digits long."
	ValidationPassword = "Password must be at least 6 characters long and contain letters and numbers."
	ValidationDesc     = "Invalid description format."
	ValidationPrice    = "Price must be a non-negative amount with at most two decimals."
	ValidationRating   = "Rating must be between 1 and 5."
)

// Roles and permissions
const (
	RoleExists              = "Role already exists"
	RoleAdded               = "Role added successfully"
	RolesFetched            = "Roles fetched successfully"
	PermissionExists        = "Permission already exists"
	PermissionAdded         = "Permission added successfully"
	PermissionsFetched      = "Permissions fetched successfully"
	RolePermissionAssigned  = "Role permission assigned successfully"
	RolePermissionExists    = "Permission already assigned to role"
	RoleNotFound            = "Role not found"
	PermissionNotFound      = "Permission not found"
	InsufficientPermissions = "Access Denied: Insufficient Permissions"
	NoRoleFound             = "No role found for the user"
	InvalidPermissionMethod = "Invalid permission method"
)

// OTP
const (
	OTPSent     = "OTP has been sent successfully."
	OTPVerified = "OTP verified successfully."
	InvalidOTP  = "Invalid OTP."
	ExpiredOTP  = "OTP has expired."
)

// Catalog
const (
	MenuItemCreated    = "Menu item created successfully."
	MenuItemsFetched   = "Menu items fetched successfully."
	MenuItemFetched    = "Menu item fetched successfully."
	MenuItemUpdated    = "Menu item updated successfully."
	MenuItemDeleted    = "Menu item deleted successfully."
	MenuItemNotFound   = "Menu item not found."
	MenuNameExists     = "Menu name already exists"
	MenuImageUploaded  = "Menu image uploaded successfully."
	MenuImported       = "Menu items imported successfully."
	InvalidImage       = "Image must be a JPG, JPEG or PNG file."
	ImageTooLarge      = "Image size exceeds the upload limit."
	InvalidWorkbook    = "Workbook must contain at least one valid row."
	CategoryCreated    = "Category created successfully."
	CategoryRetrieved  = "Category retrieved successfully."
	CategoryUpdated    = "Category updated successfully."
	CategoryDeleted    = "Category deleted successfully."
	CategoriesFetched  = "Categories retrieved successfully."
	CategoryNotFound   = "Category not found."
	CategoryNameExists = "Category name already exists"
)

// Cart
const (
	CartItemAdded    = "Item added to cart successfully."
	CartItemsFetched = "Cart items retrieved successfully."
	CartItemUpdated  = "Cart item updated successfully."
	CartItemRemoved  = "Cart item removed successfully."
	CartItemNotFound = "Cart item not found."
	CartEmpty        = "Cart is empty."
	InvalidQuantity  = "Invalid Quantity."
)

// Orders
const (
	OrderCreated        = "Order created successfully."
	OrdersFetched       = "Orders retrieved successfully."
	OrderUpdated        = "Order updated successfully."
	OrderRemoved        = "Order removed successfully."
	OrderNotFound       = "Order not found."
	MenuItemUnpriced    = "One or more menu items in the cart are unavailable or have no price."
	InvalidTotal        = "Order total must be a positive amount."
	InvalidStatusChange = "Order status change is not allowed."
)

// Bills
const (
	BillCreated  = "Bill created successfully."
	BillsFetched = "Bills retrieved successfully."
	BillFetched  = "Bill retrieved successfully."
	BillNotFound = "Bill not found."
	BillUpdated  = "Bill updated successfully."
	BillDeleted  = "Bill deleted successfully."
)

// Feedback
const (
	FeedbackCreated  = "Feedback created successfully."
	FeedbacksFetched = "Feedbacks retrieved successfully."
	FeedbackFetched  = "Feedback retrieved successfully."
	FeedbackNotFound = "Feedback not found."
	FeedbackUpdated  = "Feedback updated successfully."
	FeedbackDeleted  = "Feedback deleted successfully."
)

// Favorites
const (
	FavoriteAdded         = "Favorite added successfully."
	FavoritesFetched      = "Favorites retrieved successfully."
	FavoriteDeleted       = "Favorite deleted successfully."
	FavoriteNotFound      = "Favorite not found."
	FavoritesCleared      = "All favorites cleared successfully."
	FavoriteAlreadyExists = "This item is already in your favorites."
)

// Staff
const (
	StaffCreated  = "Staff member created successfully."
	StaffFetched  = "Staff member(s) retrieved successfully."
	StaffNotFound = "Staff member not found."
	StaffUpdated  = "Staff member updated successfully."
	StaffDeleted  = "Staff member deleted successfully."
)

// Performance metrics
const (
	MetricsCreated  = "Performance metrics created successfully."
	MetricsFetched  = "Performance metrics retrieved successfully."
	MetricsNotFound = "No performance metrics found."
)
