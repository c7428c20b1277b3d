package transport

type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest carries a password field for client compatibility, but
// no credential is stored or verified anywhere in the system.
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ActivityRequest struct {
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Action    string `json:"action"`
}

type AuthResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DBStatsResponse struct {
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
}
