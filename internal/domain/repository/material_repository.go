package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// MaterialRepository define o porto de persistência do catálogo de materiais.
// Usado dentro de transações para garantir consistência da quantidade.
type MaterialRepository interface {
	// GetByName retorna nil quando o material não existe.
	GetByName(material string) (*entity.Material, error)
	// GetByNameForUpdate bloqueia a linha do material (SELECT FOR UPDATE).
	GetByNameForUpdate(material string) (*entity.Material, error)
	Create(m *entity.Material) error
	UpdateQuantidade(material string, quantidade int64) error
	Delete(material string) error
	List() ([]*entity.Material, error)
	ListByCategoria(categoria string) ([]*entity.Material, error)
	Categorias() ([]string, error)
	Total() (int64, error)
	DeleteAll() error
}
