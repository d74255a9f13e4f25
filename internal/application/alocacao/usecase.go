package alocacao

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/alocacao"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// Pair identifica o par fixo de depósitos entre os quais toda alocação é dividida.
// Vem da configuração; nada de ids cravados no código.
type Pair struct {
	PrimarioID   int64
	SecundarioID int64
}

// UseCase divide alocações entre o par fixo de depósitos e permite correção
// pontual de uma linha já gravada.
type UseCase struct {
	txRunner     TxRunner
	alocRepo     repository.AlocacaoRepository
	depositoRepo repository.DepositoRepository
	pair         Pair
}

// NewUseCase constrói o caso de uso. alocRepo (atado ao pool) serve às leituras e
// à correção pontual; a inserção do par passa pelo txRunner.
func NewUseCase(txRunner TxRunner, alocRepo repository.AlocacaoRepository, depositoRepo repository.DepositoRepository, pair Pair) *UseCase {
	return &UseCase{txRunner: txRunner, alocRepo: alocRepo, depositoRepo: depositoRepo, pair: pair}
}

// AlocarInput entrada para uma solicitação de alocação.
type AlocarInput struct {
	Material   string
	Quantidade int64
	Observacao string
}

// AlocarResult divisão calculada para uma alocação aceita.
type AlocarResult struct {
	Material        string
	QuantidadeTotal int64
	Primario        int64
	Secundario      int64
	Lote            string
}

// Alocar valida a solicitação, calcula a divisão 70/30 e insere as duas linhas
// (uma por depósito) na mesma transação. Não consulta o catálogo: alocação é
// contabilidade sobre estoque já adquirido, não um segundo consumo.
func (uc *UseCase) Alocar(ctx context.Context, in AlocarInput) (*AlocarResult, error) {
	if strings.TrimSpace(in.Material) == "" || in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.verificarDeposito(uc.pair.PrimarioID); err != nil {
		return nil, err
	}
	if err := uc.verificarDeposito(uc.pair.SecundarioID); err != nil {
		return nil, err
	}

	primario, secundario := alocacao.Split(in.Quantidade)
	lote := uuid.New().String()
	agora := time.Now()

	err := uc.txRunner.RunAlocacao(ctx, func(alocRepo repository.AlocacaoRepository) error {
		a1 := &entity.Alocacao{
			Lote:         lote,
			Material:     in.Material,
			Deposito:     uc.pair.PrimarioID,
			Quantidade:   primario,
			Observacao:   in.Observacao + " (70%)",
			DataAlocacao: agora,
		}
		if err := alocRepo.Create(a1); err != nil {
			return err
		}
		a2 := &entity.Alocacao{
			Lote:         lote,
			Material:     in.Material,
			Deposito:     uc.pair.SecundarioID,
			Quantidade:   secundario,
			Observacao:   in.Observacao + " (30%)",
			DataAlocacao: agora,
		}
		return alocRepo.Create(a2)
	})
	if err != nil {
		return nil, err
	}
	return &AlocarResult{
		Material:        in.Material,
		QuantidadeTotal: in.Quantidade,
		Primario:        primario,
		Secundario:      secundario,
		Lote:            lote,
	}, nil
}

// AtualizarInput entrada para corrigir uma alocação existente.
type AtualizarInput struct {
	Deposito   int64
	Quantidade int64
	Observacao string
}

// Atualizar corrige depósito/quantidade/observação de uma única linha, sem
// recalcular a divisão e sem tocar na linha irmã do par. A leitura e a escrita
// acontecem na mesma transação.
func (uc *UseCase) Atualizar(ctx context.Context, id int64, in AtualizarInput) (*entity.Alocacao, error) {
	if in.Deposito <= 0 || in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.verificarDeposito(in.Deposito); err != nil {
		return nil, err
	}

	var atualizada *entity.Alocacao
	err := uc.txRunner.RunAlocacao(ctx, func(alocRepo repository.AlocacaoRepository) error {
		existente, err := alocRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existente == nil {
			return domain.ErrNotFound
		}
		existente.Deposito = in.Deposito
		existente.Quantidade = in.Quantidade
		existente.Observacao = in.Observacao
		if err := alocRepo.Update(existente); err != nil {
			return err
		}
		atualizada = existente
		return nil
	})
	if err != nil {
		return nil, err
	}
	return atualizada, nil
}

// PorDeposito lista as alocações de um depósito, mais recentes primeiro.
func (uc *UseCase) PorDeposito(depositoID int64) ([]*entity.Alocacao, error) {
	return uc.alocRepo.ListByDeposito(depositoID)
}

// ListarTodas lista todas as alocações com o nome do depósito, mais recentes primeiro.
func (uc *UseCase) ListarTodas() ([]*entity.Alocacao, error) {
	return uc.alocRepo.ListAll()
}

func (uc *UseCase) verificarDeposito(id int64) error {
	d, err := uc.depositoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return nil
}
