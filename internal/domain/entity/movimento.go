package entity

import "time"

// Tipos de movimento de estoque.
const (
	MovimentoEntrada = "entrada"
	MovimentoSaida   = "saida"
)

// Movimento representa um registro imutável do diário de movimentações.
// É append-only: nunca é alterado nem removido, exceto pela limpeza total do estoque.
type Movimento struct {
	ID         int64
	Material   string
	Tipo       string
	Quantidade int64
	Horario    time.Time
}
