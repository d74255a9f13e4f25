package inventory

import (
	"context"

	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante atomicidade entre o catálogo e o diário de movimentações.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		matRepo repository.MaterialRepository,
		movRepo repository.MovimentoRepository,
	) error) error
}
