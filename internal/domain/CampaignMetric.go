package domain

import "time"

// CampaignMetric representa as métricas diárias de uma campanha, por grupo de
// anúncios, como retornadas pela origem de dados
type CampaignMetric struct {
	Date         string  `json:"date"`
	DayOfWeek    string  `json:"day_of_week"`
	CampaignID   int64   `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	AdGroupName  string  `json:"ad_group_name"`
	Status       string  `json:"status"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Cost         float64 `json:"cost"`
	Conversions  float64 `json:"conversions"`
	Ctr          float64 `json:"ctr"`
	AverageCpc   float64 `json:"average_cpc"`
	AverageCpa   float64 `json:"average_cpa"`
}

// CampaignMetricPlaceholder sintetiza uma linha zerada para uma data sem
// atividade na origem
func CampaignMetricPlaceholder(date time.Time) CampaignMetric {
	return CampaignMetric{
		Date:         date.Format(time.DateOnly),
		DayOfWeek:    WeekdayName(date),
		CampaignID:   0,
		CampaignName: UnknownDimension,
		AdGroupName:  UnknownDimension,
		Status:       UnknownDimension,
	}
}
