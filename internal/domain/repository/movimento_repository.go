package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// MovimentoRepository define o porto de persistência do diário de movimentações (append-only).
type MovimentoRepository interface {
	// Create persiste o movimento e preenche m.ID com o id gerado.
	Create(m *entity.Movimento) error
	// List retorna os movimentos na ordem de inserção.
	List() ([]*entity.Movimento, error)
	Count() (int64, error)
	DeleteAll() error
}
