package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	appalocacao "github.com/vivere-producoes/estoque-api/internal/application/alocacao"
	"github.com/vivere-producoes/estoque-api/internal/application/catalog"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/excel"
)

// RouterDeps dependências para o roteador.
type RouterDeps struct {
	CatalogoUC       *catalog.UseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AlocacaoUC       *appalocacao.UseCase
	DepositoUC       *usecase.DepositoUseCase
	EventoUC         *usecase.EventoUseCase
	UsuarioUC        *usecase.UsuarioUseCase
	LogUC            *usecase.LogUseCase
	Exporter         *excel.EstoqueExporter
	MetricsEnabled   bool
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo e estoque
	estoqueHandler := NewEstoqueHandler(deps.CatalogoUC, deps.RegisterMovement, deps.Exporter)
	api.Get("/inventario", estoqueHandler.ListInventario)
	api.Post("/inventario", estoqueHandler.CreateMaterial)
	api.Get("/inventario/:material", estoqueHandler.GetMaterial)
	api.Delete("/inventario/:material", estoqueHandler.RemoveMaterial)
	api.Get("/materiais", estoqueHandler.ListMateriais)
	api.Get("/materiais/:categoria", estoqueHandler.ListPorCategoria)
	api.Get("/categorias", estoqueHandler.ListCategorias)
	api.Get("/estoque", estoqueHandler.ListInventario)
	api.Get("/estoque/total", estoqueHandler.Total)
	api.Get("/estoque/exportar", estoqueHandler.Exportar)
	api.Delete("/estoque", estoqueHandler.Limpar)

	// Movimentações
	movimentoHandler := NewMovimentoHandler(deps.RegisterMovement)
	api.Post("/movimentos", movimentoHandler.Register)
	api.Get("/movimentos", movimentoHandler.List)

	// Alocações entre depósitos
	alocacaoHandler := NewAlocacaoHandler(deps.AlocacaoUC)
	api.Post("/alocacoes", alocacaoHandler.Criar)
	api.Get("/alocacoes", alocacaoHandler.ListarTodas)
	api.Put("/alocacoes/:id", alocacaoHandler.Atualizar)
	api.Get("/alocacoes/deposito/:deposito_id", alocacaoHandler.PorDeposito)

	// Depósitos
	depositoHandler := NewDepositoHandler(deps.DepositoUC)
	api.Get("/depositos", depositoHandler.List)
	api.Post("/depositos", depositoHandler.Create)
	api.Put("/depositos/:id", depositoHandler.Update)

	// Eventos
	eventoHandler := NewEventoHandler(deps.EventoUC)
	api.Get("/eventos", eventoHandler.List)
	api.Post("/eventos", eventoHandler.Create)
	api.Put("/eventos/:id", eventoHandler.Update)

	// Usuários
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	api.Get("/usuarios", usuarioHandler.List)
	api.Post("/usuarios", usuarioHandler.Create)
	api.Delete("/usuarios/:id", usuarioHandler.Delete)

	// Auditoria
	logHandler := NewLogHandler(deps.LogUC)
	api.Get("/logs", logHandler.List)

	if deps.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
}
