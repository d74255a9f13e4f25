package postgres

import (
	"context"
	"fmt"

	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação de MovimentoRepository sobre PostgreSQL (usável com pool ou tx).
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// Create persiste um movimento e preenche m.ID.
func (r *MovimentoRepo) Create(m *entity.Movimento) error {
	query := `
		INSERT INTO movimentos (material, tipo, quantidade, horario)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.Material, m.Tipo, m.Quantidade, m.Horario,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimento: %w", mapConnErr(err))
	}
	return nil
}

// List devolve os movimentos na ordem de inserção (id crescente).
func (r *MovimentoRepo) List() ([]*entity.Movimento, error) {
	query := `
		SELECT id, material, tipo, quantidade, horario
		FROM movimentos ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Movimento
	for rows.Next() {
		var m entity.Movimento
		if err := rows.Scan(&m.ID, &m.Material, &m.Tipo, &m.Quantidade, &m.Horario); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count devolve o total de movimentos registrados.
func (r *MovimentoRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM movimentos`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movimentos: %w", mapConnErr(err))
	}
	return total, nil
}

// DeleteAll apaga o diário inteiro (parte da limpeza total, sempre dentro de tx).
func (r *MovimentoRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movimentos`); err != nil {
		return fmt.Errorf("limpar movimentos: %w", mapConnErr(err))
	}
	return nil
}
