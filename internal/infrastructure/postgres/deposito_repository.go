package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.DepositoRepository = (*DepositoRepo)(nil)

// DepositoRepo implementação de DepositoRepository sobre PostgreSQL.
type DepositoRepo struct {
	q Querier
}

// NewDepositoRepository constrói o adaptador.
func NewDepositoRepository(q Querier) *DepositoRepo {
	return &DepositoRepo{q: q}
}

// Create persiste um depósito e preenche d.ID.
func (r *DepositoRepo) Create(d *entity.Deposito) error {
	query := `
		INSERT INTO depositos (nome, endereco)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.q.QueryRow(context.Background(), query, d.Nome, d.Endereco).Scan(&d.ID); err != nil {
		return fmt.Errorf("insert deposito: %w", mapConnErr(err))
	}
	return nil
}

// GetByID busca um depósito. Devolve nil quando não existe.
func (r *DepositoRepo) GetByID(id int64) (*entity.Deposito, error) {
	var d entity.Deposito
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nome, endereco FROM depositos WHERE id = $1`, id,
	).Scan(&d.ID, &d.Nome, &d.Endereco)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposito: %w", mapConnErr(err))
	}
	return &d, nil
}

// Update atualiza nome e endereço de um depósito.
func (r *DepositoRepo) Update(d *entity.Deposito) error {
	query := `UPDATE depositos SET nome = $2, endereco = $3 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, d.ID, d.Nome, d.Endereco); err != nil {
		return fmt.Errorf("update deposito: %w", mapConnErr(err))
	}
	return nil
}

// List devolve todos os depósitos.
func (r *DepositoRepo) List() ([]*entity.Deposito, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nome, endereco FROM depositos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list depositos: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Deposito
	for rows.Next() {
		var d entity.Deposito
		if err := rows.Scan(&d.ID, &d.Nome, &d.Endereco); err != nil {
			return nil, fmt.Errorf("scan deposito: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
