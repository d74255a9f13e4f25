package repository

import "github.com/vivere-producoes/estoque-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para usuários do painel.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	List() ([]*entity.Usuario, error)
	Delete(id string) error
}
