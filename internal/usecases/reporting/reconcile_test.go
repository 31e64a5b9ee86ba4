package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func mustCalendar(t *testing.T, startDate, endDate string) []time.Time {
	t.Helper()

	calendar, err := ExpandCalendar(startDate, endDate)
	require.NoError(t, err)
	return calendar
}

func campaignDateOf(m domain.CampaignMetric) string { return m.Date }

func TestReconcileByDatePreencheLacunas(t *testing.T) {
	calendar := mustCalendar(t, "2024-03-01", "2024-03-03")

	// Apenas o dia 02 tem atividade na origem
	rows := []domain.CampaignMetric{
		{Date: "2024-03-02", CampaignName: "Campanha A", Impressions: 10},
	}

	result := reconcileByDate(calendar, rows, campaignDateOf, domain.CampaignMetricPlaceholder)

	require.Len(t, result, 3)

	// Dia 01: linha sintetizada com métricas zeradas e dimensões UNKNOWN
	assert.Equal(t, "2024-03-01", result[0].Date)
	assert.Equal(t, "FRIDAY", result[0].DayOfWeek)
	assert.Equal(t, domain.UnknownDimension, result[0].CampaignName)
	assert.Equal(t, domain.UnknownDimension, result[0].AdGroupName)
	assert.Zero(t, result[0].Impressions)
	assert.Zero(t, result[0].Cost)

	// Dia 02: a linha real é preservada intacta
	assert.Equal(t, rows[0], result[1])

	// Dia 03: linha sintetizada
	assert.Equal(t, "2024-03-03", result[2].Date)
	assert.Equal(t, "SUNDAY", result[2].DayOfWeek)
}

func TestReconcileByDateSemLinhas(t *testing.T) {
	calendar := mustCalendar(t, "2024-03-01", "2024-03-02")

	result := reconcileByDate(calendar, nil, campaignDateOf, domain.CampaignMetricPlaceholder)

	require.Len(t, result, 2)
	assert.Equal(t, "2024-03-01", result[0].Date)
	assert.Equal(t, "2024-03-02", result[1].Date)
	for _, row := range result {
		assert.Equal(t, domain.UnknownDimension, row.CampaignName)
	}
}

func TestReconcileByDateNaoDescartaLinhasForaDoCalendario(t *testing.T) {
	calendar := mustCalendar(t, "2024-03-02", "2024-03-03")

	// O dia 01 está fora do calendário mas veio da origem
	rows := []domain.CampaignMetric{
		{Date: "2024-03-01", CampaignName: "Fora do período", Impressions: 5},
		{Date: "2024-03-02", CampaignName: "Dentro do período", Impressions: 7},
	}

	result := reconcileByDate(calendar, rows, campaignDateOf, domain.CampaignMetricPlaceholder)

	require.Len(t, result, 3)
	assert.Equal(t, "Fora do período", result[0].CampaignName)
	assert.Equal(t, "Dentro do período", result[1].CampaignName)
	// O dia 03 continua ganhando linha sintetizada
	assert.Equal(t, "2024-03-03", result[2].Date)
	assert.Equal(t, domain.UnknownDimension, result[2].CampaignName)
}

func TestReconcileByDatePreservaOrdemDentroDaData(t *testing.T) {
	calendar := mustCalendar(t, "2024-03-01", "2024-03-01")

	// A origem ordena por conversões decrescentes dentro da data
	rows := []domain.CampaignMetric{
		{Date: "2024-03-01", CampaignName: "Maior conversão", Conversions: 9},
		{Date: "2024-03-01", CampaignName: "Menor conversão", Conversions: 1},
	}

	result := reconcileByDate(calendar, rows, campaignDateOf, domain.CampaignMetricPlaceholder)

	require.Len(t, result, 2)
	assert.Equal(t, "Maior conversão", result[0].CampaignName)
	assert.Equal(t, "Menor conversão", result[1].CampaignName)
}

func TestReconcileByDatePlaceholderDeAnuncios(t *testing.T) {
	calendar := mustCalendar(t, "2024-03-01", "2024-03-01")

	result := reconcileByDate(calendar, []domain.AdCreativeMetric{},
		func(m domain.AdCreativeMetric) string { return m.Date },
		domain.AdCreativeMetricPlaceholder,
	)

	require.Len(t, result, 1)
	// As listas de títulos e descrições nunca ficam vazias
	assert.Equal(t, []string{domain.UnknownDimension}, result[0].Headlines)
	assert.Equal(t, []string{domain.UnknownDimension}, result[0].Descriptions)
}

func TestFilterActive(t *testing.T) {
	rows := []domain.KeywordMetric{
		{KeywordText: "ativa", Impressions: 3},
		{KeywordText: "inativa", Impressions: 0},
	}

	filtered := filterActive(rows, func(m domain.KeywordMetric) int64 { return m.Impressions })

	require.Len(t, filtered, 1)
	assert.Equal(t, "ativa", filtered[0].KeywordText)
}
