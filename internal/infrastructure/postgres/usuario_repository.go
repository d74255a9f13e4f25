package postgres

import (
	"context"
	"fmt"

	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário. Email duplicado devolve ErrDuplicate.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, senha_hash, perfil)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, u.ID, u.Nome, u.Email, u.SenhaHash, u.Perfil)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", mapConnErr(err))
	}
	return nil
}

// List devolve os usuários cadastrados (sem o hash de senha).
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, email, perfil FROM usuarios ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Perfil); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove um usuário pelo id.
func (r *UsuarioRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete usuario: %w", mapConnErr(err))
	}
	return nil
}
