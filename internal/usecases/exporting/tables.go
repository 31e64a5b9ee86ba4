package exporting

import (
	"strings"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Cabeçalhos fixos de cada aba. A ordem das colunas é contrato com as
// planilhas dos clientes e não pode mudar

var campaignHeader = []string{
	"date", "dayOfWeek", "campaignId", "campaignName", "adGroupName", "status",
	"impressions", "clicks", "cost", "conversions", "averageCpa", "ctr", "averageCpc",
}

var perDayHeader = []string{
	"date", "impressions", "clicks", "conversions", "cost", "hour", "dayOfWeek",
}

var keywordHeader = []string{
	"date", "campaignName", "adGroupName", "keywordText", "matchType",
	"impressions", "clicks", "cost", "averageCpc", "conversions", "conversionRate", "dayOfWeek",
}

var adCreativeHeader = []string{
	"date", "campaignName", "adName", "responsiveHeadlines", "responsiveDescriptions",
	"clicks", "impressions", "conversions",
}

var accountHeader = []string{
	"customerId", "descriptiveName", "impressions", "clicks", "cost",
	"conversions", "averageCpa", "ctr", "averageCpc",
}

func campaignRows(metrics []domain.CampaignMetric) [][]interface{} {
	rows := make([][]interface{}, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []interface{}{
			m.Date, m.DayOfWeek, m.CampaignID, m.CampaignName, m.AdGroupName, m.Status,
			m.Impressions, m.Clicks, m.Cost, m.Conversions, m.AverageCpa, m.Ctr, m.AverageCpc,
		})
	}

	return rows
}

func perDayRows(metrics []domain.PerDayMetric) [][]interface{} {
	rows := make([][]interface{}, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []interface{}{
			m.Date, m.Impressions, m.Clicks, m.Conversions, m.Cost, m.Hour, m.DayOfWeek,
		})
	}

	return rows
}

func keywordRows(metrics []domain.KeywordMetric) [][]interface{} {
	rows := make([][]interface{}, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []interface{}{
			m.Date, m.CampaignName, m.AdGroupName, m.KeywordText, m.MatchType,
			m.Impressions, m.Clicks, m.Cost, m.AverageCpc, m.Conversions, m.ConversionRate, m.DayOfWeek,
		})
	}

	return rows
}

func adCreativeRows(metrics []domain.AdCreativeMetric) [][]interface{} {
	rows := make([][]interface{}, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []interface{}{
			m.Date, m.CampaignName, m.AdName,
			strings.Join(m.Headlines, ", "), strings.Join(m.Descriptions, ", "),
			m.Clicks, m.Impressions, m.Conversions,
		})
	}

	return rows
}

func accountRows(metric *domain.AccountMetric) [][]interface{} {
	if metric == nil {
		return [][]interface{}{}
	}

	return [][]interface{}{{
		metric.CustomerID, metric.DescriptiveName, metric.Impressions, metric.Clicks,
		metric.Cost, metric.Conversions, metric.AverageCpa, metric.Ctr, metric.AverageCpc,
	}}
}
