package domain

import "time"

// PerDayMetric representa os totais da conta em um único dia, usados na aba de
// gráfico das planilhas
type PerDayMetric struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Cost        float64 `json:"cost"`
	Hour        int     `json:"hour"`
	DayOfWeek   string  `json:"day_of_week"`
}

// PerDayMetricPlaceholder sintetiza um total diário zerado para uma data sem
// atividade na origem
func PerDayMetricPlaceholder(date time.Time) PerDayMetric {
	return PerDayMetric{
		Date:      date.Format(time.DateOnly),
		Hour:      0,
		DayOfWeek: WeekdayName(date),
	}
}
