package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vivere-producoes/estoque-api/internal/domain"
	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação de MaterialRepository sobre PostgreSQL (usável com pool ou tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// GetByName busca um material pelo nome. Devolve nil quando não existe.
func (r *MaterialRepo) GetByName(material string) (*entity.Material, error) {
	query := `
		SELECT id, material, categoria, quantidade
		FROM inventario WHERE material = $1`
	return r.scanOne(query, material)
}

// GetByNameForUpdate busca o material e bloqueia a linha (SELECT FOR UPDATE).
func (r *MaterialRepo) GetByNameForUpdate(material string) (*entity.Material, error) {
	query := `
		SELECT id, material, categoria, quantidade
		FROM inventario WHERE material = $1
		FOR UPDATE`
	return r.scanOne(query, material)
}

func (r *MaterialRepo) scanOne(query, material string) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, material).Scan(
		&m.ID, &m.Material, &m.Categoria, &m.Quantidade,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", mapConnErr(err))
	}
	return &m, nil
}

// Create insere um material novo. Nome duplicado devolve ErrDuplicate.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO inventario (material, categoria, quantidade)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, m.Material, m.Categoria, m.Quantidade).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", mapConnErr(err))
	}
	return nil
}

// UpdateQuantidade grava a quantidade atual do material.
func (r *MaterialRepo) UpdateQuantidade(material string, quantidade int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventario SET quantidade = $2 WHERE material = $1`, material, quantidade)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", mapConnErr(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete apaga a linha do material. Movimentos que o referenciam permanecem.
func (r *MaterialRepo) Delete(material string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventario WHERE material = $1`, material)
	if err != nil {
		return fmt.Errorf("delete material: %w", mapConnErr(err))
	}
	return nil
}

// List devolve o catálogo completo ordenado por categoria.
func (r *MaterialRepo) List() ([]*entity.Material, error) {
	query := `
		SELECT id, material, categoria, quantidade
		FROM inventario ORDER BY categoria, material`
	return r.scanMany(query)
}

// ListByCategoria devolve os materiais com quantidade > 0 de uma categoria.
func (r *MaterialRepo) ListByCategoria(categoria string) ([]*entity.Material, error) {
	query := `
		SELECT id, material, categoria, quantidade
		FROM inventario WHERE categoria = $1 AND quantidade > 0
		ORDER BY material`
	return r.scanMany(query, categoria)
}

func (r *MaterialRepo) scanMany(query string, args ...any) ([]*entity.Material, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materiais: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Material, &m.Categoria, &m.Quantidade); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Categorias devolve os rótulos distintos de categoria presentes no catálogo.
func (r *MaterialRepo) Categorias() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT categoria FROM inventario ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", mapConnErr(err))
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Total devolve a soma das quantidades de todo o catálogo (0 se vazio).
func (r *MaterialRepo) Total() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantidade), 0) FROM inventario`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total estoque: %w", mapConnErr(err))
	}
	return total, nil
}

// DeleteAll apaga todo o catálogo (parte da limpeza total, sempre dentro de tx).
func (r *MaterialRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM inventario`); err != nil {
		return fmt.Errorf("limpar inventario: %w", mapConnErr(err))
	}
	return nil
}
