package domain

// AccountMetric representa os totais consolidados de uma conta no período.
// Diferente das demais categorias não há dimensão de data: é uma linha por
// conta, então a série nunca passa pela reconciliação de calendário
type AccountMetric struct {
	CustomerID      int64   `json:"customer_id"`
	DescriptiveName string  `json:"descriptive_name"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Cost            float64 `json:"cost"`
	Conversions     float64 `json:"conversions"`
	Ctr             float64 `json:"ctr"`
	AverageCpc      float64 `json:"average_cpc"`
	AverageCpa      float64 `json:"average_cpa"`
}
