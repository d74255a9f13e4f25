package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// DepositoRepository define o porto de persistência para depósitos.
type DepositoRepository interface {
	Create(d *entity.Deposito) error
	// GetByID retorna nil quando o depósito não existe.
	GetByID(id int64) (*entity.Deposito, error)
	Update(d *entity.Deposito) error
	List() ([]*entity.Deposito, error)
}
