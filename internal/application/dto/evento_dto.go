package dto

// EventoRequest body para POST e PUT /api/eventos. Datas no formato 2006-01-02.
type EventoRequest struct {
	NomeEvento string `json:"nome_evento"`
	Cliente    string `json:"cliente"`
	Status     string `json:"status"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}

// EventoResponse saída de um evento.
type EventoResponse struct {
	ID         int64  `json:"id"`
	NomeEvento string `json:"nome_evento"`
	Cliente    string `json:"cliente"`
	Status     string `json:"status"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}
