package domain

import "time"

// KeywordMetric representa as métricas diárias de uma palavra-chave
type KeywordMetric struct {
	Date           string  `json:"date"`
	DayOfWeek      string  `json:"day_of_week"`
	CampaignName   string  `json:"campaign_name"`
	AdGroupName    string  `json:"ad_group_name"`
	KeywordText    string  `json:"keyword_text"`
	MatchType      string  `json:"match_type"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Cost           float64 `json:"cost"`
	AverageCpc     float64 `json:"average_cpc"`
	Conversions    float64 `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

// KeywordMetricPlaceholder sintetiza uma linha de palavra-chave zerada para uma
// data sem atividade na origem
func KeywordMetricPlaceholder(date time.Time) KeywordMetric {
	return KeywordMetric{
		Date:         date.Format(time.DateOnly),
		DayOfWeek:    WeekdayName(date),
		CampaignName: UnknownDimension,
		AdGroupName:  UnknownDimension,
		KeywordText:  UnknownDimension,
		MatchType:    UnknownDimension,
	}
}
