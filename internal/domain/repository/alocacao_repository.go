package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// AlocacaoRepository define o porto de persistência das alocações por depósito.
type AlocacaoRepository interface {
	// Create persiste a alocação e preenche a.ID com o id gerado.
	Create(a *entity.Alocacao) error
	// GetByID retorna nil quando a alocação não existe.
	GetByID(id int64) (*entity.Alocacao, error)
	Update(a *entity.Alocacao) error
	// ListByDeposito retorna as alocações de um depósito, mais recentes primeiro.
	ListByDeposito(depositoID int64) ([]*entity.Alocacao, error)
	// ListAll retorna todas as alocações com o nome do depósito, mais recentes primeiro.
	ListAll() ([]*entity.Alocacao, error)
}
