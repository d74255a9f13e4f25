package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Coletores do serviço de estoque, registrados no registry padrão do Prometheus.
var (
	// MovimentosRegistrados conta movimentos aceitos, por tipo (entrada/saida).
	MovimentosRegistrados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_movimentos_registrados_total",
		Help: "Movimentos de estoque aceitos, por tipo.",
	}, []string{"tipo"})

	// MovimentosRejeitados conta movimentos recusados, por motivo.
	MovimentosRejeitados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_movimentos_rejeitados_total",
		Help: "Movimentos de estoque recusados, por motivo.",
	}, []string{"motivo"})

	// AlocacoesCriadas conta solicitações de alocação aceitas (cada uma gera um par de linhas).
	AlocacoesCriadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estoque_alocacoes_criadas_total",
		Help: "Solicitações de alocação aceitas.",
	})

	// EstoqueTotal última soma de quantidades do catálogo, atualizada pelo job de snapshot.
	EstoqueTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "estoque_total_unidades",
		Help: "Soma das quantidades de todo o catálogo.",
	})
)
