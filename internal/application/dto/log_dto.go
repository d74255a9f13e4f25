package dto

import "time"

// LogResponse saída de uma entrada do registro de auditoria.
type LogResponse struct {
	ID          int64     `json:"id"`
	Acao        string    `json:"acao"`
	Descricao   string    `json:"descricao"`
	RotaAfetada string    `json:"rota_afetada"`
	DataHora    time.Time `json:"data_hora"`
	Usuario     string    `json:"usuario"`
}
