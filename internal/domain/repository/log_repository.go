package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// LogRepository define o porto de leitura do registro de auditoria.
type LogRepository interface {
	// List retorna as entradas com o nome do usuário, mais recentes primeiro.
	List() ([]*entity.LogEntry, error)
}
