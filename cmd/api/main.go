package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	appalocacao "github.com/vivere-producoes/estoque-api/internal/application/alocacao"
	"github.com/vivere-producoes/estoque-api/internal/application/catalog"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/excel"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/vivere-producoes/estoque-api/internal/interfaces/http"
	"github.com/vivere-producoes/estoque-api/internal/scheduler"
	"github.com/vivere-producoes/estoque-api/pkg/config"
	"github.com/vivere-producoes/estoque-api/pkg/logger"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	matRepo := postgres.NewMaterialRepository(pool)
	movRepo := postgres.NewMovimentoRepository(pool)
	alocRepo := postgres.NewAlocacaoRepository(pool)
	depositoRepo := postgres.NewDepositoRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movRepo)
	catalogoUC := catalog.NewUseCase(matRepo, txRunner)
	alocacaoUC := appalocacao.NewUseCase(txRunner, alocRepo, depositoRepo, appalocacao.Pair{
		PrimarioID:   cfg.Alocacao.DepositoPrimarioID,
		SecundarioID: cfg.Alocacao.DepositoSecundarioID,
	})
	depositoUC := usecase.NewDepositoUseCase(depositoRepo)
	eventoUC := usecase.NewEventoUseCase(eventoRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	logUC := usecase.NewLogUseCase(logRepo)
	exporter := excel.NewEstoqueExporter()

	snapshot := scheduler.New(matRepo, log)
	if cfg.Metrics.Enabled {
		if err := snapshot.Start(cfg.Snapshot.Schedule); err != nil {
			log.Fatal().Err(err).Msg("scheduler de snapshot")
		}
		defer snapshot.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Nomes de material viajam no path ("Treliça Q30"); sem isso o
		// parâmetro chega percent-encoded e nenhuma busca encontra nada.
		UnescapePath: true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.Origins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vivere Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC:       catalogoUC,
		RegisterMovement: registerMovementUC,
		AlocacaoUC:       alocacaoUC,
		DepositoUC:       depositoUC,
		EventoUC:         eventoUC,
		UsuarioUC:        usuarioUC,
		LogUC:            logUC,
		Exporter:         exporter,
		MetricsEnabled:   cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
