package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login contra la
// colección users, con emisión de bearer tokens firmados.
//
// Por compatibilidad con los datos legados, el password se guarda y compara
// en claro por defecto. HashPasswords activa bcrypt en reposo para las altas
// nuevas (endurecimiento requerido en producción); el login reconoce ambos
// formatos para convivir con registros anteriores a la migración.
type AuthUseCase struct {
	users         repository.UserRepository
	jwtCfg        JWTConfig
	hashPasswords bool
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig, hashPasswords bool) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, hashPasswords: hashPasswords}
}

// Register crea un usuario con rol "user" y devuelve la identidad creada más
// un token firmado. domain.ErrConflict si el userName ya existe (match
// exacto, sensible a mayúsculas).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.UserName == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByUserName(in.UserName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	stored := in.Password
	if uc.hashPasswords {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		stored = string(hash)
	}

	user, err := uc.users.Create(entity.Record{
		"userName": in.UserName,
		"password": stored,
		"fullName": in.FullName,
		"email":    in.Email,
		"role":     entity.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{AccessToken: token, User: *toUserResponse(user)}, nil
}

// Login verifica userName/password y devuelve token más proyección pública
// del usuario (sin password). domain.ErrUnauthorized si no hay match exacto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.UserName == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUserName(in.UserName)
	if err != nil {
		return nil, err
	}
	if user == nil || !verifyPassword(user.Password, in.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{AccessToken: token, User: *toUserResponse(user)}, nil
}

func (uc *AuthUseCase) issueToken(user *entity.User) (string, error) {
	role := user.Role
	if role == "" {
		role = entity.RoleUser
	}
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, user.UserName, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// verifyPassword compara contra el valor almacenado: hash bcrypt si el
// registro ya fue migrado, igualdad exacta si sigue en claro.
func verifyPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	role := u.Role
	if role == "" {
		role = entity.RoleUser
	}
	return &dto.UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     role,
	}
}
