package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// EventoRepository define o porto de persistência para eventos de produção.
type EventoRepository interface {
	Create(e *entity.Evento) error
	// GetByID retorna nil quando o evento não existe.
	GetByID(id int64) (*entity.Evento, error)
	Update(e *entity.Evento) error
	List() ([]*entity.Evento, error)
}
