package repository

import "github.com/tu-usuario/tienda-api/internal/domain/entity"

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(c *entity.Category) error
	Delete(id string) error
}
