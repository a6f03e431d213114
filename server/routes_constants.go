package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex = "/"

	// Auth Routes - Login & Logout
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"

	// Signed in area
	RouteDashboard = "/dashboard"

	// Static Asset Routes (patterns)
	RouteStaticCSS   = "/css/{file}"
	RouteStaticJS    = "/js/{file}"
	RouteStaticIcons = "/assets/icons/{file}"
)
