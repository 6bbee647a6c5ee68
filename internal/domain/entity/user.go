package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del sistema. Password se conserva tal como se
// persiste (en claro por compatibilidad con los datos legados, o hash bcrypt
// si el modo de endurecimiento está activo); nunca sale en respuestas.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"userName"` // único dentro de la colección users
	Password string `json:"password,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"` // admin | user (default user)
}
