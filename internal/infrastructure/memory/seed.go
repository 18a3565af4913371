package memory

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gametechlabs/stock-api/internal/domain/entity"
)

// Seed carga el catálogo y los usuarios de demostración: un depósito, los productos
// P001..P006 y tres usuarios con roles distintos. Deja el contador de códigos en 6,
// así el primer producto creado por la API recibe P007.
func Seed(s *Store) error {
	now := time.Now()

	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Address:   "Depósito Central Junín - Av. Libertad 1234",
		Capacity:  2000,
		CreatedAt: now,
	}

	products := []*entity.Product{
		{Code: "P001", Name: "Mouse Logitech G502 HERO", Category: "Periférico", MinThreshold: 10, Quantity: 25},
		{Code: "P002", Name: "Teclado Redragon Kumara K552", Category: "Periférico", MinThreshold: 15, Quantity: 30},
		{Code: "P003", Name: "Monitor Samsung 24\" Curvo FHD", Category: "Pantalla", MinThreshold: 5, Quantity: 12},
		{Code: "P004", Name: "Placa de Video NVIDIA RTX 3060", Category: "Hardware", MinThreshold: 3, Quantity: 5},
		{Code: "P005", Name: "Auriculares HyperX Cloud II", Category: "Audio", MinThreshold: 10, Quantity: 18},
		{Code: "P006", Name: "Disco SSD Kingston A2000 1TB", Category: "Almacenamiento", MinThreshold: 8, Quantity: 20},
	}

	users := []struct {
		username, password, name, role string
	}{
		{"admin", "admin123", "Administrador", entity.RoleAdmin},
		{"lucia", "clave123", "Lucía", entity.RoleManager},
		{"marcos", "log123", "Marcos", entity.RoleLogistics},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.addWarehouse(wh)

	for _, p := range products {
		p.Warehouse = wh
		p.CreatedAt = now
		s.addProduct(p)
	}
	s.lastCode = len(products)

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.addUser(&entity.User{
			ID:           uuid.New().String(),
			Username:     u.username,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			CreatedAt:    now,
		})
	}
	return nil
}
