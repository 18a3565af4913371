package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gametechlabs/stock-api/internal/application/auth"
	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/infrastructure/memory"
	pkgjwt "github.com/gametechlabs/stock-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func seededAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))
	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gametech-stock-test",
	})
}

func TestAuthenticate_AdminConClaveCorrecta(t *testing.T) {
	uc := seededAuthUseCase(t)

	user, err := uc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAuthenticate_ClaveIncorrecta(t *testing.T) {
	uc := seededAuthUseCase(t)

	_, err := uc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	uc := seededAuthUseCase(t)

	// Mismo error que clave incorrecta: no se filtra si el usuario existe.
	_, err := uc.Authenticate("desconocido", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_TokenConRol(t *testing.T) {
	uc := seededAuthUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "lucia", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.User.Role)
	require.NotEmpty(t, out.Token)

	_, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "lucia", username)
	assert.Equal(t, entity.RoleManager, role)
}
