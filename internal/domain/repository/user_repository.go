package repository

import "github.com/gametechlabs/stock-api/internal/domain/entity"

// UserRepository define el puerto de almacenamiento para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
