package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
)

// UsuarioHandler trata o cadastro de usuários do painel.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List lista os usuários cadastrados.
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.List()
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return c.JSON(out)
}

// Create cadastra um usuário.
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	u, err := h.uc.Create(in.Nome, in.Email, in.Senha, in.Perfil)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUsuarioResponse(u))
}

// Delete remove um usuário pelo id.
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuário removido"})
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:     u.ID,
		Nome:   u.Nome,
		Email:  u.Email,
		Perfil: u.Perfil,
	}
}
