package entity

import "time"

// Evento representa um evento de produção (montagem, feira, show) com período e cliente.
type Evento struct {
	ID         int64
	NomeEvento string
	Cliente    string
	Status     string
	DataInicio time.Time
	DataFim    time.Time
}
