package domain

import "time"

// BatchRun registra uma execução do lote de relatórios: identificador, janela
// de execução e o desfecho de cada requisição, na ordem em que foram
// processadas
type BatchRun struct {
	ID         string                `json:"id"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
	Status     ReportStatus          `json:"status"`
	Results    []ReportRequestResult `json:"results"`
}
