package dto

import "time"

// CriarAlocacaoRequest body para POST /api/alocacoes.
type CriarAlocacaoRequest struct {
	Material   string `json:"material"`
	Quantidade int64  `json:"quantidade"`
	Observacao string `json:"observacao"`
}

// DivisaoAlocacao divisão calculada entre o par fixo de depósitos.
type DivisaoAlocacao struct {
	Primario   int64 `json:"primario"`
	Secundario int64 `json:"secundario"`
}

// CriarAlocacaoResponse saída de POST /api/alocacoes.
type CriarAlocacaoResponse struct {
	Material        string          `json:"material"`
	QuantidadeTotal int64           `json:"quantidade_total"`
	Divisao         DivisaoAlocacao `json:"divisao"`
	Lote            string          `json:"lote"`
}

// AtualizarAlocacaoRequest body para PUT /api/alocacoes/:id.
type AtualizarAlocacaoRequest struct {
	Deposito   int64  `json:"deposito"`
	Quantidade int64  `json:"quantidade"`
	Observacao string `json:"observacao"`
}

// AlocacaoResponse saída de uma alocação.
type AlocacaoResponse struct {
	ID           int64     `json:"id"`
	Lote         string    `json:"lote"`
	Material     string    `json:"material"`
	Deposito     int64     `json:"deposito"`
	NomeDeposito string    `json:"nome_deposito,omitempty"`
	Quantidade   int64     `json:"quantidade"`
	Observacao   string    `json:"observacao"`
	DataAlocacao time.Time `json:"data_alocacao"`
}
