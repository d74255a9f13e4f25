package usecase

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

// PerfilPadrao aplicado quando a requisição não informa perfil.
const PerfilPadrao = "Comum"

// UsuarioUseCase casos de uso para usuários do painel.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create cadastra um usuário. A senha é guardada como hash bcrypt, nunca em claro.
func (uc *UsuarioUseCase) Create(nome, email, senha, perfil string) (*entity.Usuario, error) {
	if strings.TrimSpace(nome) == "" || strings.TrimSpace(email) == "" || senha == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(perfil) == "" {
		perfil = PerfilPadrao
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Perfil:    perfil,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// List lista os usuários cadastrados (sem o hash de senha nos DTOs).
func (uc *UsuarioUseCase) List() ([]*entity.Usuario, error) {
	return uc.repo.List()
}

// Delete remove um usuário pelo id.
func (uc *UsuarioUseCase) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}
