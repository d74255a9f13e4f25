package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
)

// DepositoHandler trata o CRUD de depósitos.
type DepositoHandler struct {
	uc *usecase.DepositoUseCase
}

// NewDepositoHandler constrói o handler.
func NewDepositoHandler(uc *usecase.DepositoUseCase) *DepositoHandler {
	return &DepositoHandler{uc: uc}
}

// List lista os depósitos cadastrados.
func (h *DepositoHandler) List(c *fiber.Ctx) error {
	depositos, err := h.uc.List()
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]dto.DepositoResponse, 0, len(depositos))
	for _, d := range depositos {
		out = append(out, toDepositoResponse(d))
	}
	return c.JSON(out)
}

// Create cadastra um depósito.
func (h *DepositoHandler) Create(c *fiber.Ctx) error {
	var in dto.DepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.Create(in.NomeDeposito, in.Endereco)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDepositoResponse(d))
}

// Update atualiza nome e endereço de um depósito.
func (h *DepositoHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "id inválido",
		})
	}
	var in dto.DepositoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.uc.Update(id, in.NomeDeposito, in.Endereco)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toDepositoResponse(d))
}

func toDepositoResponse(d *entity.Deposito) dto.DepositoResponse {
	return dto.DepositoResponse{
		ID:           d.ID,
		NomeDeposito: d.Nome,
		Endereco:     d.Endereco,
	}
}
