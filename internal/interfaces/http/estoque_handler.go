package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vivere-producoes/estoque-api/internal/application/catalog"
	"github.com/vivere-producoes/estoque-api/internal/application/dto"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/excel"
)

// EstoqueHandler trata as requisições do catálogo de materiais e do estoque.
type EstoqueHandler struct {
	catalogo *catalog.UseCase
	ledger   *inventory.RegisterMovementUseCase
	exporter *excel.EstoqueExporter
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(catalogo *catalog.UseCase, ledger *inventory.RegisterMovementUseCase, exporter *excel.EstoqueExporter) *EstoqueHandler {
	return &EstoqueHandler{catalogo: catalogo, ledger: ledger, exporter: exporter}
}

// ListInventario devolve o catálogo completo. Aceita ?busca= para filtrar por
// nome, ignorando acentos e caixa.
func (h *EstoqueHandler) ListInventario(c *fiber.Ctx) error {
	var (
		materiais []*entity.Material
		err       error
	)
	if busca := c.Query("busca"); busca != "" {
		materiais, err = h.catalogo.Search(busca)
	} else {
		materiais, err = h.catalogo.List()
	}
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toMaterialResponses(materiais))
}

// CreateMaterial godoc
// @Summary      Cadastrar material no catálogo
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "material, categoria, quantidade inicial"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *EstoqueHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.catalogo.Create(catalog.CreateInput{
		Material:   in.Material,
		Categoria:  in.Categoria,
		Quantidade: in.Quantidade,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMaterialResponse(m))
}

// RemoveMaterial apaga a linha do material; os movimentos permanecem como trilha órfã.
func (h *EstoqueHandler) RemoveMaterial(c *fiber.Ctx) error {
	if err := h.catalogo.Remove(c.Params("material")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "material removido"})
}

// GetMaterial busca um material pelo nome.
func (h *EstoqueHandler) GetMaterial(c *fiber.Ctx) error {
	m, err := h.catalogo.Get(c.Params("material"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toMaterialResponse(m))
}

// ListMateriais devolve só os nomes distintos do catálogo com a categoria, sem quantidades.
func (h *EstoqueHandler) ListMateriais(c *fiber.Ctx) error {
	materiais, err := h.catalogo.List()
	if err != nil {
		return respondErr(c, err)
	}
	out := make([]dto.MaterialNomeResponse, 0, len(materiais))
	for _, m := range materiais {
		out = append(out, dto.MaterialNomeResponse{Material: m.Material, Categoria: m.Categoria})
	}
	return c.JSON(out)
}

// ListCategorias devolve os rótulos de categoria presentes no catálogo.
func (h *EstoqueHandler) ListCategorias(c *fiber.Ctx) error {
	categorias, err := h.catalogo.Categorias()
	if err != nil {
		return respondErr(c, err)
	}
	if categorias == nil {
		categorias = []string{}
	}
	return c.JSON(categorias)
}

// ListPorCategoria devolve os materiais com quantidade > 0 de uma categoria.
func (h *EstoqueHandler) ListPorCategoria(c *fiber.Ctx) error {
	materiais, err := h.catalogo.ListByCategoria(c.Params("categoria"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(toMaterialResponses(materiais))
}

// Total devolve a soma das quantidades de todo o catálogo.
func (h *EstoqueHandler) Total(c *fiber.Ctx) error {
	total, err := h.catalogo.Total()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.TotalEstoqueResponse{Total: total})
}

// Limpar apaga catálogo e movimentações na mesma transação.
func (h *EstoqueHandler) Limpar(c *fiber.Ctx) error {
	if err := h.catalogo.Limpar(c.Context()); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estoque limpo"})
}

// Exportar devolve o workbook .xlsx com inventário e movimentações.
func (h *EstoqueHandler) Exportar(c *fiber.Ctx) error {
	materiais, err := h.catalogo.List()
	if err != nil {
		return respondErr(c, err)
	}
	movimentos, err := h.ledger.List()
	if err != nil {
		return respondErr(c, err)
	}
	b, err := h.exporter.Export(materiais, movimentos)
	if err != nil {
		return respondErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.xlsx"`)
	return c.Send(b)
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:         m.ID,
		Material:   m.Material,
		Categoria:  m.Categoria,
		Quantidade: m.Quantidade,
	}
}

func toMaterialResponses(materiais []*entity.Material) []dto.MaterialResponse {
	out := make([]dto.MaterialResponse, 0, len(materiais))
	for _, m := range materiais {
		out = append(out, toMaterialResponse(m))
	}
	return out
}
