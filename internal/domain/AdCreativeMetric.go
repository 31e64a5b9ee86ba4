package domain

import "time"

// AdCreativeMetric representa os títulos e descrições de um anúncio responsivo
// e suas métricas diárias
type AdCreativeMetric struct {
	Date         string   `json:"date"`
	CampaignName string   `json:"campaign_name"`
	AdName       string   `json:"ad_name"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	Clicks       int64    `json:"clicks"`
	Impressions  int64    `json:"impressions"`
	Conversions  float64  `json:"conversions"`
}

// AdCreativeMetricPlaceholder sintetiza uma linha de anúncio zerada para uma
// data sem atividade na origem. As listas nunca ficam vazias porque a
// serialização das abas assume ao menos um elemento
func AdCreativeMetricPlaceholder(date time.Time) AdCreativeMetric {
	return AdCreativeMetric{
		Date:         date.Format(time.DateOnly),
		CampaignName: UnknownDimension,
		AdName:       UnknownDimension,
		Headlines:    []string{UnknownDimension},
		Descriptions: []string{UnknownDimension},
	}
}
