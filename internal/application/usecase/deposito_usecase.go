package usecase

import (
	"strings"

	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// DepositoUseCase casos de uso CRUD para depósitos.
type DepositoUseCase struct {
	repo repository.DepositoRepository
}

// NewDepositoUseCase constrói o caso de uso.
func NewDepositoUseCase(repo repository.DepositoRepository) *DepositoUseCase {
	return &DepositoUseCase{repo: repo}
}

// Create cadastra um depósito.
func (uc *DepositoUseCase) Create(nome, endereco string) (*entity.Deposito, error) {
	if strings.TrimSpace(nome) == "" || strings.TrimSpace(endereco) == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Deposito{Nome: nome, Endereco: endereco}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update atualiza nome e endereço de um depósito.
func (uc *DepositoUseCase) Update(id int64, nome, endereco string) (*entity.Deposito, error) {
	if strings.TrimSpace(nome) == "" || strings.TrimSpace(endereco) == "" {
		return nil, domain.ErrInvalidInput
	}
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	d.Nome = nome
	d.Endereco = endereco
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

// List lista todos os depósitos.
func (uc *DepositoUseCase) List() ([]*entity.Deposito, error) {
	return uc.repo.List()
}
