package auth_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/filestore"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newAuthUseCase(t *testing.T, hashPasswords bool) (*auth.AuthUseCase, *filestore.UserRepo) {
	t.Helper()
	store, err := filestore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	users := filestore.NewUserRepository(store)
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-api",
	}, hashPasswords)
	return uc, users
}

func TestRegister_EmiteTokenConClaims(t *testing.T) {
	uc, _ := newAuthUseCase(t, false)

	resp, err := uc.Register(dto.RegisterRequest{
		UserName: "alice",
		Password: "clave123",
		FullName: "Alice López",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	userID, username, role, err := jwt.Parse(testSecret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID, "subject = id del usuario creado")
	assert.Equal(t, "alice", username)
	assert.Equal(t, "user", role, "las altas siempre nacen con rol user")

	assert.Equal(t, "alice", resp.User.UserName)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)
}

func TestRegister_UserNameDuplicado(t *testing.T) {
	uc, users := newAuthUseCase(t, false)

	_, err := uc.Register(dto.RegisterRequest{UserName: "bob", Password: "a"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{UserName: "bob", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	existing, err := users.GetByUserName("bob")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "a", existing.Password, "el registro original queda intacto")
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc, _ := newAuthUseCase(t, false)

	_, err := uc.Register(dto.RegisterRequest{UserName: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{UserName: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUseCase(t, false)

	_, err := uc.Register(dto.RegisterRequest{UserName: "carla", Password: "secreta"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{UserName: "carla", Password: "secreta"})
	require.NoError(t, err)

	_, username, role, err := jwt.Parse(testSecret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "carla", username)
	assert.Equal(t, "user", role)
}

func TestLogin_RechazaSinMatchExacto(t *testing.T) {
	uc, _ := newAuthUseCase(t, false)

	_, err := uc.Register(dto.RegisterRequest{UserName: "dana", Password: "Secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{UserName: "dana", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el password compara sensible a mayúsculas")

	_, err = uc.Login(dto.LoginRequest{UserName: "Dana", Password: "Secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el userName compara sensible a mayúsculas")

	_, err = uc.Login(dto.LoginRequest{UserName: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_ConHashEnReposo(t *testing.T) {
	uc, users := newAuthUseCase(t, true)

	_, err := uc.Register(dto.RegisterRequest{UserName: "eva", Password: "clave"})
	require.NoError(t, err)

	stored, err := users.GetByUserName("eva")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"), "con hashing activo el password en reposo es bcrypt")
	assert.NotEqual(t, "clave", stored.Password)

	// El login sigue funcionando con el password original
	_, err = uc.Login(dto.LoginRequest{UserName: "eva", Password: "clave"})
	assert.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{UserName: "eva", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_StoreMixtoClaroYHash(t *testing.T) {
	// Un alta con hashing activo deja un hash en el store; luego el modo se
	// apaga y conviven registros en claro y migrados
	uc, users := newAuthUseCase(t, true)
	_, err := uc.Register(dto.RegisterRequest{UserName: "hash", Password: "uno"})
	require.NoError(t, err)

	plainUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "tienda-api"}, false)
	_, err = plainUC.Register(dto.RegisterRequest{UserName: "claro", Password: "dos"})
	require.NoError(t, err)

	_, err = plainUC.Login(dto.LoginRequest{UserName: "hash", Password: "uno"})
	assert.NoError(t, err, "el login reconoce hashes bcrypt aunque el hashing esté apagado")
	_, err = plainUC.Login(dto.LoginRequest{UserName: "claro", Password: "dos"})
	assert.NoError(t, err)
}
