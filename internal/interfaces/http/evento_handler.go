package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
)

const formatoData = "2006-01-02"

// EventoHandler trata o CRUD de eventos de produção.
type EventoHandler struct {
	uc *usecase.EventoUseCase
}

// NewEventoHandler constrói o handler.
func NewEventoHandler(uc *usecase.EventoUseCase) *EventoHandler {
	return &EventoHandler{uc: uc}
}

// List lista os eventos cadastrados.
func (h *EventoHandler) List(c *fiber.Ctx) error {
	eventos, err := h.uc.List()
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]dto.EventoResponse, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, toEventoResponse(e))
	}
	return c.JSON(out)
}

// Create cadastra um evento.
func (h *EventoHandler) Create(c *fiber.Ctx) error {
	in, ok := parseEventoBody(c)
	if !ok {
		return nil
	}
	e, err := h.uc.Create(in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toEventoResponse(e))
}

// Update sobrescreve todos os campos de um evento.
func (h *EventoHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "id inválido",
		})
	}
	in, ok := parseEventoBody(c)
	if !ok {
		return nil
	}
	e, err := h.uc.Update(id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toEventoResponse(e))
}

// parseEventoBody lê o body e converte as datas. Quando retorna ok=false a
// resposta de erro já foi escrita.
func parseEventoBody(c *fiber.Ctx) (usecase.EventoInput, bool) {
	var in dto.EventoRequest
	if err := c.BodyParser(&in); err != nil {
		_ = badBody(c)
		return usecase.EventoInput{}, false
	}
	inicio, err := time.Parse(formatoData, in.DataInicio)
	if err != nil {
		_ = respondDataInvalida(c, "data_inicio")
		return usecase.EventoInput{}, false
	}
	fim, err := time.Parse(formatoData, in.DataFim)
	if err != nil {
		_ = respondDataInvalida(c, "data_fim")
		return usecase.EventoInput{}, false
	}
	return usecase.EventoInput{
		NomeEvento: in.NomeEvento,
		Cliente:    in.Cliente,
		Status:     in.Status,
		DataInicio: inicio,
		DataFim:    fim,
	}, true
}

func respondDataInvalida(c *fiber.Ctx, campo string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: campo + " deve estar no formato AAAA-MM-DD",
	})
}

func toEventoResponse(e *entity.Evento) dto.EventoResponse {
	return dto.EventoResponse{
		ID:         e.ID,
		NomeEvento: e.NomeEvento,
		Cliente:    e.Cliente,
		Status:     e.Status,
		DataInicio: e.DataInicio.Format(formatoData),
		DataFim:    e.DataFim.Format(formatoData),
	}
}
