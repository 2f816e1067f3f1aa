package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteRegister = "/api/register"
	RouteLogin    = "/api/login"
	RouteHealth   = "/health"
)

// AuthTokenHeader carries the issued session token on a successful
// login. The header is the primary delivery channel; the token is also
// echoed in the JSON body for legacy clients only.
const AuthTokenHeader = "Authorization"
