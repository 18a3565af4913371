// Package memory implementa el registro de stock en memoria: catálogo de productos,
// historial de movimientos solo-agregado, usuarios y depósitos. No hay persistencia
// durable; el Store es la única fuente de verdad mientras el proceso vive.
//
// Un único mutex serializa todo acceso. Los repositorios públicos toman el lock por
// operación; el TxRunner lo toma una sola vez y pasa vistas sin lock, de modo que la
// secuencia verificar-mutar-agregar de un movimiento sea atómica (dos salidas
// concurrentes sobre el mismo producto no pueden pasar ambas la verificación).
package memory

import (
	"sync"

	"github.com/gametechlabs/stock-api/internal/domain/entity"
)

// Store contiene el estado compartido. Solo los repositorios de este paquete lo
// mutan; hacia afuera se entregan copias de los slices, y los productos salen
// como instantáneas de valor (ver ProductRepository).
type Store struct {
	mu sync.Mutex

	products       []*entity.Product
	productsByCode map[string]*entity.Product
	movements      []entity.Movement
	users          []*entity.User
	warehouses     []*entity.Warehouse

	// Último número de código acuñado; el siguiente producto recibe lastCode+1.
	lastCode int
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		productsByCode: make(map[string]*entity.Product),
	}
}

// ── helpers sin lock: el caller debe tener s.mu tomado ───────────────────────

func (s *Store) addProduct(p *entity.Product) {
	s.products = append(s.products, p)
	s.productsByCode[p.Code] = p
}

func (s *Store) productByCode(code string) *entity.Product {
	return s.productsByCode[code]
}

func (s *Store) productList() []*entity.Product {
	out := make([]*entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) appendMovement(m entity.Movement) {
	s.movements = append(s.movements, m)
}

func (s *Store) movementHistory() []entity.Movement {
	out := make([]entity.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

func (s *Store) addUser(u *entity.User) {
	s.users = append(s.users, u)
}

func (s *Store) userByUsername(username string) *entity.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *Store) userList() []*entity.User {
	out := make([]*entity.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) addWarehouse(w *entity.Warehouse) {
	s.warehouses = append(s.warehouses, w)
}

func (s *Store) warehouseByID(id string) *entity.Warehouse {
	for _, w := range s.warehouses {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (s *Store) warehouseList() []*entity.Warehouse {
	out := make([]*entity.Warehouse, len(s.warehouses))
	copy(out, s.warehouses)
	return out
}
