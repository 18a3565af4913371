package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
	"github.com/gametechlabs/stock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación de usuarios y emisión de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Authenticate busca el usuario por nombre y compara la contraseña contra el hash.
// Cualquier desajuste (usuario inexistente o clave incorrecta) devuelve
// ErrInvalidCredentials sin distinguir el caso.
func (uc *AuthUseCase) Authenticate(username, password string) (*entity.User, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login autentica y genera el JWT con el rol para que el middleware pueda
// autorizar sin volver a consultar el registro.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
