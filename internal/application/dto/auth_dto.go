package dto

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// UserResponse proyección pública de un usuario (nunca incluye password).
type UserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role"`
}

// AuthResponse token emitido más la proyección pública del usuario.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
