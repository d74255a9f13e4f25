package entity

import "time"

// LogEntry registro de auditoria de ações no painel (somente leitura pela API).
type LogEntry struct {
	ID          int64
	Acao        string
	Descricao   string
	RotaAfetada string
	DataHora    time.Time
	Usuario     string
}
