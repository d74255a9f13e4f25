package dto

import "time"

// RegisterMovimentoRequest body para POST /api/movimentos.
type RegisterMovimentoRequest struct {
	Material   string `json:"material"`
	Tipo       string `json:"tipo"`
	Quantidade int64  `json:"quantidade"`
}

// MovimentoResponse saída de um movimento registrado.
type MovimentoResponse struct {
	ID         int64     `json:"id"`
	Material   string    `json:"material"`
	Tipo       string    `json:"tipo"`
	Quantidade int64     `json:"quantidade"`
	Horario    time.Time `json:"horario"`
}

// RegisterMovimentoResponse saída de POST /api/movimentos: id do movimento aceito
// e quantidade atual do material após o movimento.
type RegisterMovimentoResponse struct {
	MovimentoID int64  `json:"movimento_id"`
	Material    string `json:"material"`
	Quantidade  int64  `json:"quantidade"`
}
