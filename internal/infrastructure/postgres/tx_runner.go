package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vivere-producoes/estoque-api/internal/application/alocacao"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and alocacao.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ alocacao.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com os repositórios do motor de estoque
// atados à tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapConnErr(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	matRepo := NewMaterialRepository(tx)
	movRepo := NewMovimentoRepository(tx)

	if err := fn(matRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapConnErr(err))
	}
	return nil
}

// RunAlocacao inicia uma transação com o repositório de alocações (inserção do par 70/30).
func (r *TxRunner) RunAlocacao(ctx context.Context, fn func(alocRepo repository.AlocacaoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapConnErr(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAlocacaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapConnErr(err))
	}
	return nil
}
