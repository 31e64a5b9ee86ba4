package domain

import (
	"strings"
	"time"
)

// UnknownDimension é o valor sentinela usado nas linhas sintetizadas quando a
// dimensão não existe na origem (nunca vazio/nulo)
const UnknownDimension = "UNKNOWN"

// ReportPeriod representa o período de análise de um relatório, com as datas
// no formato ISO (YYYY-MM-DD) como a API do Google Ads espera
type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// WeekdayName retorna o nome do dia da semana no formato usado pelo Google Ads
// (MONDAY, TUESDAY, ...), igual ao segments.day_of_week das linhas reais
func WeekdayName(date time.Time) string {
	return strings.ToUpper(date.Weekday().String())
}
