package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo implementação de EventoRepository sobre PostgreSQL.
type EventoRepo struct {
	q Querier
}

// NewEventoRepository constrói o adaptador.
func NewEventoRepository(q Querier) *EventoRepo {
	return &EventoRepo{q: q}
}

// Create persiste um evento e preenche e.ID.
func (r *EventoRepo) Create(e *entity.Evento) error {
	query := `
		INSERT INTO eventos (nome_evento, cliente, status, data_inicio, data_fim)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.NomeEvento, e.Cliente, e.Status, e.DataInicio, e.DataFim,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert evento: %w", mapConnErr(err))
	}
	return nil
}

// GetByID busca um evento. Devolve nil quando não existe.
func (r *EventoRepo) GetByID(id int64) (*entity.Evento, error) {
	query := `
		SELECT id, nome_evento, cliente, status, data_inicio, data_fim
		FROM eventos WHERE id = $1`
	var e entity.Evento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.NomeEvento, &e.Cliente, &e.Status, &e.DataInicio, &e.DataFim,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", mapConnErr(err))
	}
	return &e, nil
}

// Update sobrescreve todos os campos de um evento.
func (r *EventoRepo) Update(e *entity.Evento) error {
	query := `
		UPDATE eventos SET nome_evento = $2, cliente = $3, status = $4, data_inicio = $5, data_fim = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.NomeEvento, e.Cliente, e.Status, e.DataInicio, e.DataFim,
	)
	if err != nil {
		return fmt.Errorf("update evento: %w", mapConnErr(err))
	}
	return nil
}

// List devolve todos os eventos.
func (r *EventoRepo) List() ([]*entity.Evento, error) {
	query := `
		SELECT id, nome_evento, cliente, status, data_inicio, data_fim
		FROM eventos ORDER BY data_inicio`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Evento
	for rows.Next() {
		var e entity.Evento
		if err := rows.Scan(&e.ID, &e.NomeEvento, &e.Cliente, &e.Status, &e.DataInicio, &e.DataFim); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
