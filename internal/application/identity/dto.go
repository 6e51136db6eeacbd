package identity

// RegisterUserInput carries the fields needed to create an account
type RegisterUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Mail     string `json:"mail"`
}

// Credentials carries a login attempt
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
