package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
	"github.com/vivere-producoes/estoque-api/internal/infrastructure/metrics"
	"github.com/vivere-producoes/estoque-api/pkg/logger"
)

// Scheduler agenda o job de snapshot do estoque: atualiza o gauge de total e
// registra em log os materiais zerados.
type Scheduler struct {
	cron    *cron.Cron
	matRepo repository.MaterialRepository
	log     *logger.Logger
}

// New constrói o scheduler.
func New(matRepo repository.MaterialRepository, log *logger.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), matRepo: matRepo, log: log}
}

// Start agenda o snapshot no formato cron informado ("@every 15m", "0 * * * *", ...)
// e dispara uma primeira execução imediata.
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.snapshot); err != nil {
		return fmt.Errorf("agendar snapshot: %w", err)
	}
	s.snapshot()
	s.cron.Start()
	return nil
}

// Stop interrompe o scheduler. Jobs em execução terminam normalmente.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) snapshot() {
	total, err := s.matRepo.Total()
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot de estoque falhou")
		return
	}
	metrics.EstoqueTotal.Set(float64(total))

	materiais, err := s.matRepo.List()
	if err != nil {
		s.log.Error().Err(err).Msg("listagem do snapshot falhou")
		return
	}
	zerados := 0
	for _, m := range materiais {
		if m.Quantidade == 0 {
			zerados++
			s.log.Warn().Str("material", m.Material).Str("categoria", m.Categoria).Msg("material sem estoque")
		}
	}
	s.log.Info().Int64("total", total).Int("materiais", len(materiais)).Int("zerados", zerados).Msg("snapshot de estoque")
}
