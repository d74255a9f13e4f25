package usecase

import (
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// LogUseCase leitura do registro de auditoria (persistência de passagem, sem regra).
type LogUseCase struct {
	repo repository.LogRepository
}

// NewLogUseCase constrói o caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// List retorna as entradas de auditoria, mais recentes primeiro.
func (uc *LogUseCase) List() ([]*entity.LogEntry, error) {
	return uc.repo.List()
}
