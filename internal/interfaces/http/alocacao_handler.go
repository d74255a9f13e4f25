package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/alocacao"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/metrics"
)

// AlocacaoHandler trata as requisições de alocação entre depósitos.
type AlocacaoHandler struct {
	uc *alocacao.UseCase
}

// NewAlocacaoHandler constrói o handler.
func NewAlocacaoHandler(uc *alocacao.UseCase) *AlocacaoHandler {
	return &AlocacaoHandler{uc: uc}
}

// Criar godoc
// @Summary      Alocar material entre os depósitos (divisão 70/30)
// @Tags         alocacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarAlocacaoRequest  true  "material, quantidade, observação"
// @Success      201   {object}  dto.CriarAlocacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alocacoes [post]
func (h *AlocacaoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarAlocacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Alocar(c.Context(), alocacao.AlocarInput{
		Material:   in.Material,
		Quantidade: in.Quantidade,
		Observacao: in.Observacao,
	})
	if err != nil {
		return respondErr(c, err)
	}
	metrics.AlocacoesCriadas.Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CriarAlocacaoResponse{
		Material:        res.Material,
		QuantidadeTotal: res.QuantidadeTotal,
		Divisao: dto.DivisaoAlocacao{
			Primario:   res.Primario,
			Secundario: res.Secundario,
		},
		Lote: res.Lote,
	})
}

// Atualizar corrige depósito/quantidade/observação de uma linha já gravada.
func (h *AlocacaoHandler) Atualizar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "id inválido",
		})
	}
	var in dto.AtualizarAlocacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	a, err := h.uc.Atualizar(c.Context(), id, alocacao.AtualizarInput{
		Deposito:   in.Deposito,
		Quantidade: in.Quantidade,
		Observacao: in.Observacao,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toAlocacaoResponse(a))
}

// ListarTodas devolve todas as alocações com o nome do depósito, mais recentes primeiro.
func (h *AlocacaoHandler) ListarTodas(c *fiber.Ctx) error {
	alocacoes, err := h.uc.ListarTodas()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toAlocacaoResponses(alocacoes))
}

// PorDeposito devolve as alocações de um depósito.
func (h *AlocacaoHandler) PorDeposito(c *fiber.Ctx) error {
	depositoID, err := strconv.ParseInt(c.Params("deposito_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "deposito_id inválido",
		})
	}
	alocacoes, err := h.uc.PorDeposito(depositoID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toAlocacaoResponses(alocacoes))
}

func toAlocacaoResponse(a *entity.Alocacao) dto.AlocacaoResponse {
	return dto.AlocacaoResponse{
		ID:           a.ID,
		Lote:         a.Lote,
		Material:     a.Material,
		Deposito:     a.Deposito,
		NomeDeposito: a.NomeDeposito,
		Quantidade:   a.Quantidade,
		Observacao:   a.Observacao,
		DataAlocacao: a.DataAlocacao,
	}
}

func toAlocacaoResponses(alocacoes []*entity.Alocacao) []dto.AlocacaoResponse {
	out := make([]dto.AlocacaoResponse, 0, len(alocacoes))
	for _, a := range alocacoes {
		out = append(out, toAlocacaoResponse(a))
	}
	return out
}
