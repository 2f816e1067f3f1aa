package auth

// Registration is the transient submission for creating an account.
// It exists only for the duration of request handling and is never
// persisted.
type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
}

// Login is the transient submission for authenticating an account.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountSummary is returned on successful registration. It carries the
// identifier and username only - never the password or its hash.
type AccountSummary struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
}

// AccountIdentity is returned on successful authentication and feeds
// token issuance.
type AccountIdentity struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
}
