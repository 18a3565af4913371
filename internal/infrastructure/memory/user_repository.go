package memory

import (
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// UserRepository implementa repository.UserRepository sobre el Store.
type UserRepository struct {
	s *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// Create agrega el usuario. El username es único.
func (r *UserRepository) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.Username == "" {
		return domain.ErrInvalidInput
	}
	if r.s.userByUsername(user.Username) != nil {
		return domain.ErrDuplicate
	}
	r.s.addUser(user)
	return nil
}

// FindByUsername devuelve el usuario o nil si no existe (búsqueda lineal).
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userByUsername(username), nil
}

// List devuelve una copia de los usuarios en orden de alta.
func (r *UserRepository) List() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userList(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
