// seed popula o banco com dados de demonstração: catálogo de materiais de
// produção de eventos, alguns movimentos e um evento de exemplo.
//
// Uso: go run ./cmd/seed
// Lê a mesma configuração da API (DATABASE_URL ou DB_HOST etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	appalocacao "github.com/vivere-producoes/estoque-api/internal/application/alocacao"
	"github.com/vivere-producoes/estoque-api/internal/application/catalog"
	"github.com/vivere-producoes/estoque-api/internal/application/inventory"
	"github.com/vivere-producoes/estoque-api/internal/application/usecase"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/postgres"
	"github.com/vivere-producoes/estoque-api/pkg/config"
)

var materiais = []struct {
	nome       string
	categoria  string
	quantidade int64
}{
	{"Treliça Q30", "Estrutura", 40},
	{"Treliça Q15", "Estrutura", 24},
	{"Pé de Palco 2m", "Estrutura", 16},
	{"Caixa de Som Line Array", "Som", 12},
	{"Mesa de Som 32 Canais", "Som", 2},
	{"Microfone Sem Fio", "Som", 10},
	{"Moving Head Beam", "Iluminação", 8},
	{"Refletor LED Par 64", "Iluminação", 30},
	{"Máquina de Fumaça", "Iluminação", 4},
	{"Painel de LED P3", "Vídeo", 20},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		falhar("carregar configuração", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		falhar("conexão ao PostgreSQL", err)
	}
	defer pool.Close()

	matRepo := postgres.NewMaterialRepository(pool)
	movRepo := postgres.NewMovimentoRepository(pool)
	alocRepo := postgres.NewAlocacaoRepository(pool)
	depositoRepo := postgres.NewDepositoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogoUC := catalog.NewUseCase(matRepo, txRunner)
	ledgerUC := inventory.NewRegisterMovementUseCase(txRunner, movRepo)
	alocacaoUC := appalocacao.NewUseCase(txRunner, alocRepo, depositoRepo, appalocacao.Pair{
		PrimarioID:   cfg.Alocacao.DepositoPrimarioID,
		SecundarioID: cfg.Alocacao.DepositoSecundarioID,
	})
	eventoUC := usecase.NewEventoUseCase(postgres.NewEventoRepository(pool))

	for _, m := range materiais {
		if _, err := catalogoUC.Create(catalog.CreateInput{
			Material:   m.nome,
			Categoria:  m.categoria,
			Quantidade: 0,
		}); err != nil {
			falhar("cadastrar "+m.nome, err)
		}
		if _, err := ledgerUC.RegisterMovement(ctx, inventory.MovimentoInput{
			Material:   m.nome,
			Tipo:       "entrada",
			Quantidade: m.quantidade,
		}); err != nil {
			falhar("entrada de "+m.nome, err)
		}
	}
	fmt.Printf("catálogo: %d materiais com entrada inicial\n", len(materiais))

	if _, err := ledgerUC.RegisterMovement(ctx, inventory.MovimentoInput{
		Material:   "Treliça Q30",
		Tipo:       "saida",
		Quantidade: 10,
	}); err != nil {
		falhar("saída de demonstração", err)
	}

	res, err := alocacaoUC.Alocar(ctx, appalocacao.AlocarInput{
		Material:   "Refletor LED Par 64",
		Quantidade: 10,
		Observacao: "Pré-posicionamento",
	})
	if err != nil {
		falhar("alocação de demonstração", err)
	}
	fmt.Printf("alocação: %d/%d no lote %s\n", res.Primario, res.Secundario, res.Lote)

	if _, err := eventoUC.Create(usecase.EventoInput{
		NomeEvento: "Festival de Verão Maricá",
		Cliente:    "Prefeitura de Maricá",
		Status:     "Confirmado",
		DataInicio: dia(2026, 1, 15),
		DataFim:    dia(2026, 1, 18),
	}); err != nil {
		falhar("evento de demonstração", err)
	}

	fmt.Println("seed concluído")
}

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.Local)
}

func falhar(passo string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", passo, err)
	os.Exit(1)
}
