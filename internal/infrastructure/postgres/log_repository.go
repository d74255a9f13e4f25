package postgres

import (
	"context"
	"fmt"

	"github.com/vivere-producoes/estoque-api/internal/domain/entity"
	"github.com/vivere-producoes/estoque-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo leitura do registro de auditoria sobre PostgreSQL.
type LogRepo struct {
	q Querier
}

// NewLogRepository constrói o adaptador.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// List devolve as entradas de auditoria com o nome do usuário, mais recentes primeiro.
func (r *LogRepo) List() ([]*entity.LogEntry, error) {
	query := `
		SELECT l.id, l.acao, l.descricao, l.rota_afetada, l.data_hora, u.nome AS usuario
		FROM logs l
		JOIN usuarios u ON u.id = l.usuario_id
		ORDER BY l.data_hora DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", mapConnErr(err))
	}
	defer rows.Close()
	var list []*entity.LogEntry
	for rows.Next() {
		var l entity.LogEntry
		if err := rows.Scan(&l.ID, &l.Acao, &l.Descricao, &l.RotaAfetada, &l.DataHora, &l.Usuario); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
