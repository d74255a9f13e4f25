package entity

import "time"

// Alocacao representa a atribuição de uma quantidade de material a um depósito.
// Uma solicitação de alocação gera duas linhas (par 70/30) ligadas pelo mesmo Lote.
type Alocacao struct {
	ID           int64
	Lote         string // uuid compartilhado pelo par gerado na divisão
	Material     string
	Deposito     int64
	Quantidade   int64
	Observacao   string
	DataAlocacao time.Time

	// NomeDeposito preenchido apenas em listagens com join em depositos.
	NomeDeposito string
}
