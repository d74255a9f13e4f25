package inventory

import (
	"context"
	"time"

	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentos de estoque (entrada/saida) de forma
// transacional, com bloqueio de linha (SELECT FOR UPDATE) e Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimentoRepository
}

// NewRegisterMovementUseCase constrói o caso de uso. movRepo (atado ao pool) serve
// apenas às leituras; toda mutação passa pelo txRunner.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovimentoRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovimentoInput entrada para registrar um movimento de estoque.
type MovimentoInput struct {
	Material   string
	Tipo       string
	Quantidade int64
}

// MovimentoResult resultado de um movimento aceito.
type MovimentoResult struct {
	MovimentoID int64
	Material    string
	Tipo        string
	Quantidade  int64 // quantidade atual do material após o movimento
	Horario     time.Time
}

// RegisterMovement valida a requisição, abre a transação, bloqueia a linha do material,
// verifica a regra de saldo não negativo e grava atualização de quantidade + movimento
// como uma unidade. Nenhum caminho de falha deixa efeito observável.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovimentoInput) (*MovimentoResult, error) {
	if input.Tipo != entity.MovimentoEntrada && input.Tipo != entity.MovimentoSaida {
		return nil, domain.ErrInvalidMovementType
	}
	if input.Quantidade <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.Material == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *MovimentoResult
	err := uc.txRunner.Run(ctx, func(
		matRepo repository.MaterialRepository,
		movRepo repository.MovimentoRepository,
	) error {
		// Bloqueia a linha do material para que saídas concorrentes serializem
		// e a checagem de saldo seja avaliada sobre um snapshot consistente.
		material, err := matRepo.GetByNameForUpdate(input.Material)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}

		nova := material.Quantidade + input.Quantidade
		if input.Tipo == entity.MovimentoSaida {
			nova = material.Quantidade - input.Quantidade
			if nova < 0 {
				return domain.ErrInsufficientStock
			}
		}

		if err := matRepo.UpdateQuantidade(input.Material, nova); err != nil {
			return err
		}
		mov := &entity.Movimento{
			Material:   input.Material,
			Tipo:       input.Tipo,
			Quantidade: input.Quantidade,
			Horario:    time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = &MovimentoResult{
			MovimentoID: mov.ID,
			Material:    input.Material,
			Tipo:        input.Tipo,
			Quantidade:  nova,
			Horario:     mov.Horario,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List retorna os movimentos na ordem em que foram registrados.
func (uc *RegisterMovementUseCase) List() ([]*entity.Movimento, error) {
	return uc.movRepo.List()
}

// Count retorna o total de movimentos registrados.
func (uc *RegisterMovementUseCase) Count() (int64, error) {
	return uc.movRepo.Count()
}
