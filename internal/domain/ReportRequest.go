package domain

// ReportStatus representa o estágio de processamento de uma requisição de
// relatório dentro de um lote
type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusFetching    ReportStatus = "fetching"
	ReportStatusReconciling ReportStatus = "reconciling"
	ReportStatusDelivering  ReportStatus = "delivering"
	ReportStatusDone        ReportStatus = "done"
	ReportStatusFailed      ReportStatus = "failed"
)

// ReportRequest representa uma unidade de trabalho do orquestrador: um cliente,
// um período e uma planilha de destino. Construída a partir do corpo do lote e
// consumida uma única vez, sem persistência
type ReportRequest struct {
	CustomerID    string `json:"customer_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	SpreadsheetID string `json:"spreadsheet_id"`
	Client        string `json:"client"`
	Active        bool   `json:"active"`
}

// ReportRequestResult registra o desfecho de uma requisição dentro de um lote,
// para fins de log e consulta de status da última execução
type ReportRequestResult struct {
	CustomerID string       `json:"customer_id"`
	Client     string       `json:"client"`
	Status     ReportStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
}
