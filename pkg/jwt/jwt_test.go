package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "1730000000000", "alice", "user", "tienda-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "1730000000000", userID, "subject = id del usuario")
	assert.Equal(t, "alice", username)
	assert.Equal(t, "user", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "1", "alice", "admin", "tienda-api", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err, "un secret distinto invalida el token")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "1", "alice", "user", "tienda-api", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "un token vencido se rechaza")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "1", "alice", "user", "tienda-api", 60)
	assert.Error(t, err)
}
