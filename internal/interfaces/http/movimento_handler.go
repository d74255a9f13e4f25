package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/metrics"
)

// MovimentoHandler trata as requisições do diário de movimentações.
type MovimentoHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovimentoHandler constrói o handler.
func NewMovimentoHandler(uc *inventory.RegisterMovementUseCase) *MovimentoHandler {
	return &MovimentoHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimento de estoque
// @Tags         movimentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovimentoRequest  true  "material, tipo (entrada|saida), quantidade"
// @Success      201   {object}  dto.RegisterMovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentos [post]
func (h *MovimentoHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.uc.RegisterMovement(c.Context(), inventory.MovimentoInput{
		Material:   in.Material,
		Tipo:       in.Tipo,
		Quantidade: in.Quantidade,
	})
	if err != nil {
		registrarRecusa(err)
		return respondErr(c, err)
	}
	metrics.MovimentosRegistrados.WithLabelValues(result.Tipo).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovimentoResponse{
		MovimentoID: result.MovimentoID,
		Material:    result.Material,
		Quantidade:  result.Quantidade,
	})
}

// List devolve os movimentos na ordem em que foram registrados.
func (h *MovimentoHandler) List(c *fiber.Ctx) error {
	movimentos, err := h.uc.List()
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]dto.MovimentoResponse, 0, len(movimentos))
	for _, m := range movimentos {
		out = append(out, dto.MovimentoResponse{
			ID:         m.ID,
			Material:   m.Material,
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Horario:    m.Horario,
		})
	}
	return c.JSON(out)
}

func registrarRecusa(err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		metrics.MovimentosRejeitados.WithLabelValues("insuficiente").Inc()
	case errors.Is(err, domain.ErrNotFound):
		metrics.MovimentosRejeitados.WithLabelValues("nao_encontrado").Inc()
	case errors.Is(err, domain.ErrInvalidMovementType), errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidInput):
		metrics.MovimentosRejeitados.WithLabelValues("validacao").Inc()
	}
}
