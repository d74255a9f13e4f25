package alocacao

import (
	"context"

	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD com o repositório de
// alocações atado à tx. Garante que o par 70/30 entra inteiro ou não entra.
type TxRunner interface {
	RunAlocacao(ctx context.Context, fn func(alocRepo repository.AlocacaoRepository) error) error
}
