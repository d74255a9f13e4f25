package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.AlocacaoRepository = (*AlocacaoRepo)(nil)

// AlocacaoRepo implementação de AlocacaoRepository sobre PostgreSQL (usável com pool ou tx).
type AlocacaoRepo struct {
	q Querier
}

// NewAlocacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAlocacaoRepository(q Querier) *AlocacaoRepo {
	return &AlocacaoRepo{q: q}
}

// Create persiste uma alocação e preenche a.ID.
func (r *AlocacaoRepo) Create(a *entity.Alocacao) error {
	query := `
		INSERT INTO alocacoes (lote, material, deposito, quantidade, observacao, data_alocacao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.Lote, a.Material, a.Deposito, a.Quantidade, a.Observacao, a.DataAlocacao,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert alocacao: %w", mapConnErr(err))
	}
	return nil
}

// GetByID busca uma alocação. Devolve nil quando não existe.
func (r *AlocacaoRepo) GetByID(id int64) (*entity.Alocacao, error) {
	query := `
		SELECT id, lote, material, deposito, quantidade, observacao, data_alocacao
		FROM alocacoes WHERE id = $1`
	var a entity.Alocacao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Lote, &a.Material, &a.Deposito, &a.Quantidade, &a.Observacao, &a.DataAlocacao,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alocacao: %w", mapConnErr(err))
	}
	return &a, nil
}

// Update sobrescreve depósito, quantidade e observação de uma alocação.
func (r *AlocacaoRepo) Update(a *entity.Alocacao) error {
	query := `
		UPDATE alocacoes SET deposito = $2, quantidade = $3, observacao = $4
		WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, a.ID, a.Deposito, a.Quantidade, a.Observacao); err != nil {
		return fmt.Errorf("update alocacao: %w", mapConnErr(err))
	}
	return nil
}

// ListByDeposito devolve as alocações de um depósito, mais recentes primeiro.
func (r *AlocacaoRepo) ListByDeposito(depositoID int64) ([]*entity.Alocacao, error) {
	query := `
		SELECT id, lote, material, deposito, quantidade, observacao, data_alocacao
		FROM alocacoes WHERE deposito = $1
		ORDER BY data_alocacao DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, depositoID)
	if err != nil {
		return nil, fmt.Errorf("list alocacoes por deposito: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Alocacao
	for rows.Next() {
		var a entity.Alocacao
		if err := rows.Scan(&a.ID, &a.Lote, &a.Material, &a.Deposito, &a.Quantidade, &a.Observacao, &a.DataAlocacao); err != nil {
			return nil, fmt.Errorf("scan alocacao: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListAll devolve todas as alocações com o nome do depósito, mais recentes primeiro.
func (r *AlocacaoRepo) ListAll() ([]*entity.Alocacao, error) {
	query := `
		SELECT a.id, a.lote, a.material, a.deposito, d.nome, a.quantidade, a.observacao, a.data_alocacao
		FROM alocacoes a
		JOIN depositos d ON a.deposito = d.id
		ORDER BY a.data_alocacao DESC, a.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list alocacoes: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Alocacao
	for rows.Next() {
		var a entity.Alocacao
		if err := rows.Scan(&a.ID, &a.Lote, &a.Material, &a.Deposito, &a.NomeDeposito, &a.Quantidade, &a.Observacao, &a.DataAlocacao); err != nil {
			return nil, fmt.Errorf("scan alocacao: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
