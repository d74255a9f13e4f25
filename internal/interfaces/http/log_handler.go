package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
)

// LogHandler expõe o registro de auditoria em modo somente leitura.
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler constrói o handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// List devolve as entradas de auditoria, mais recentes primeiro.
func (h *LogHandler) List(c *fiber.Ctx) error {
	entradas, err := h.uc.List()
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]dto.LogResponse, 0, len(entradas))
	for _, l := range entradas {
		out = append(out, dto.LogResponse{
			ID:          l.ID,
			Acao:        l.Acao,
			Descricao:   l.Descricao,
			RotaAfetada: l.RotaAfetada,
			DataHora:    l.DataHora,
			Usuario:     l.Usuario,
		})
	}
	return c.JSON(out)
}
