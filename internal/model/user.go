package model

// User is a Bookit account.
type User struct {
	UserID           string `json:"userId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	AvailableCredits int    `json:"availableCredits,omitempty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp is the registration payload.
type SignUp struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Session is what the backend answers to signUp and login.
type Session struct {
	Token string `json:"token,omitempty"`
	User  User   `json:"user"`
}

// Credits is a user's credit balance.
type Credits struct {
	UserID           string `json:"userId"`
	AvailableCredits int    `json:"availableCredits"`
}
