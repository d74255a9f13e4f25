package dto

// DepositoRequest body para POST e PUT /api/depositos.
type DepositoRequest struct {
	NomeDeposito string `json:"nome_deposito"`
	Endereco     string `json:"endereco"`
}

// DepositoResponse saída de um depósito.
type DepositoResponse struct {
	ID           int64  `json:"id"`
	NomeDeposito string `json:"nome_deposito"`
	Endereco     string `json:"endereco"`
}
