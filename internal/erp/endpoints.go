package erp

// Backend endpoint table. Paths mirror the server's route layout; the auth
// and user routes live outside the /api prefix.
const (
	epLogin   = "/auth/login"
	epLogout  = "/auth/logout"
	epRefresh = "/auth/refresh" // reserved; no refresh flow is implemented

	epProfile = "/users/profile"

	epDashboardStats  = "/dashboard/stats"
	epMasterDashboard = "/api/dashboard/master-dashboard"

	epVendors    = "/api/vendor-master"
	epCategories = "/api/category-master"
	epHSN        = "/api/hsn-master"
	epCustomers  = "/api/customer-master"
	epProducts   = "/api/product-master"
	epStocks     = "/api/product-stocks"
)
