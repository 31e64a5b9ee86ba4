package googleads

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clientmocks "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/adsclient/mocks"
	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// queryMatcher casa consultas GAQL por fragmentos, ignorando a formatação
type queryMatcher struct {
	fragments []string
	absent    []string
}

func (m queryMatcher) Matches(x interface{}) bool {
	query, ok := x.(string)
	if !ok {
		return false
	}

	for _, fragment := range m.fragments {
		if !strings.Contains(query, fragment) {
			return false
		}
	}
	for _, fragment := range m.absent {
		if strings.Contains(query, fragment) {
			return false
		}
	}

	return true
}

func (m queryMatcher) String() string {
	return "consulta contendo " + strings.Join(m.fragments, ", ")
}

func TestGetCampaignMetricsConverteMicrosEDimensoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	matcher := queryMatcher{
		fragments: []string{
			"FROM ad_group",
			"segments.date BETWEEN '2024-03-01' AND '2024-03-02'",
			"ORDER BY segments.date ASC, metrics.conversions DESC",
		},
		absent: []string{"metrics.impressions > '0'"},
	}

	mockClient.EXPECT().
		Search("123", matcher).
		Return([]googleadsdomain.GoogleAdsRow{
			{
				Campaign: &googleadsdomain.Campaign{ID: 7, Name: "Campanha A", Status: "ENABLED"},
				AdGroup:  &googleadsdomain.AdGroup{Name: "Grupo 1"},
				Metrics: &googleadsdomain.Metrics{
					Impressions:       100,
					Clicks:            10,
					CostMicros:        1_500_000,
					Conversions:       2,
					Ctr:               0.1,
					AverageCpc:        250_000,
					CostPerConversion: 750_000,
				},
				Segments: &googleadsdomain.Segments{Date: "2024-03-01", DayOfWeek: "FRIDAY"},
			},
		}, nil)

	metrics, err := service.GetCampaignMetrics("123", "2024-03-01", "2024-03-02", false)
	require.NoError(t, err)

	require.Len(t, metrics, 1)
	assert.Equal(t, domain.CampaignMetric{
		Date:         "2024-03-01",
		DayOfWeek:    "FRIDAY",
		CampaignID:   7,
		CampaignName: "Campanha A",
		AdGroupName:  "Grupo 1",
		Status:       "ENABLED",
		Impressions:  100,
		Clicks:       10,
		Cost:         1.5,
		Conversions:  2,
		Ctr:          0.1,
		AverageCpc:   0.25,
		AverageCpa:   0.75,
	}, metrics[0])
}

func TestGetCampaignMetricsFiltraInativasNaConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	matcher := queryMatcher{
		fragments: []string{"AND metrics.impressions > '0'"},
	}

	mockClient.EXPECT().
		Search("123", matcher).
		Return([]googleadsdomain.GoogleAdsRow{}, nil)

	metrics, err := service.GetCampaignMetrics("123", "2024-03-01", "2024-03-02", true)
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestGetPerDayMetricsConsultaHoraEDeduzODiaDaSemana(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	// A consulta precisa pedir segments.hour, senão toda linha chega com hora zero
	matcher := queryMatcher{
		fragments: []string{"FROM customer", "segments.hour"},
		absent:    []string{"metrics.impressions > '0'"},
	}

	mockClient.EXPECT().
		Search("123", matcher).
		Return([]googleadsdomain.GoogleAdsRow{
			{
				Metrics:  &googleadsdomain.Metrics{Impressions: 50, Clicks: 5, Conversions: 1, CostMicros: 2_340_000},
				Segments: &googleadsdomain.Segments{Date: "2024-03-02", Hour: 14},
			},
		}, nil)

	metrics, err := service.GetPerDayMetrics("123", "2024-03-01", "2024-03-02")
	require.NoError(t, err)

	require.Len(t, metrics, 1)
	assert.Equal(t, 14, metrics[0].Hour)
	// O dia da semana não vem na consulta, é deduzido da data
	assert.Equal(t, "SATURDAY", metrics[0].DayOfWeek)
	assert.Equal(t, 2.34, metrics[0].Cost)
}

func TestGetKeywordMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	mockClient.EXPECT().
		Search("123", queryMatcher{fragments: []string{"FROM keyword_view"}}).
		Return([]googleadsdomain.GoogleAdsRow{
			{
				Campaign: &googleadsdomain.Campaign{Name: "Campanha A"},
				AdGroup:  &googleadsdomain.AdGroup{Name: "Grupo 1"},
				AdGroupCriterion: &googleadsdomain.AdGroupCriterion{
					Keyword: &googleadsdomain.KeywordInfo{Text: "óculos de sol", MatchType: "EXACT"},
				},
				Metrics:  &googleadsdomain.Metrics{Impressions: 30, Clicks: 3, CostMicros: 900_000, ConversionsFromInteractionsRate: 0.05},
				Segments: &googleadsdomain.Segments{Date: "2024-03-01", DayOfWeek: "FRIDAY"},
			},
		}, nil)

	metrics, err := service.GetKeywordMetrics("123", "2024-03-01", "2024-03-01", false)
	require.NoError(t, err)

	require.Len(t, metrics, 1)
	assert.Equal(t, "óculos de sol", metrics[0].KeywordText)
	assert.Equal(t, "EXACT", metrics[0].MatchType)
	assert.Equal(t, 0.9, metrics[0].Cost)
	assert.Equal(t, 0.05, metrics[0].ConversionRate)
}

func TestGetAdCreativeMetricsExtraiTextosDosAnuncios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	// Anúncios são sempre entregues por inteiro, sem o predicado de ativas
	mockClient.EXPECT().
		Search("123", queryMatcher{
			fragments: []string{"FROM ad_group_ad"},
			absent:    []string{"metrics.impressions > '0'"},
		}).
		Return([]googleadsdomain.GoogleAdsRow{
			{
				Campaign: &googleadsdomain.Campaign{Name: "Campanha A"},
				AdGroupAd: &googleadsdomain.AdGroupAd{
					Ad: &googleadsdomain.Ad{
						Name: "Anúncio 1",
						ResponsiveSearchAd: &googleadsdomain.ResponsiveSearchAd{
							Headlines:    []googleadsdomain.AdTextAsset{{Text: "Título 1"}, {Text: "Título 2"}},
							Descriptions: []googleadsdomain.AdTextAsset{{Text: "Descrição 1"}},
						},
					},
				},
				Metrics:  &googleadsdomain.Metrics{Clicks: 4, Impressions: 40, Conversions: 1},
				Segments: &googleadsdomain.Segments{Date: "2024-03-01"},
			},
		}, nil)

	metrics, err := service.GetAdCreativeMetrics("123", "2024-03-01", "2024-03-01")
	require.NoError(t, err)

	require.Len(t, metrics, 1)
	assert.Equal(t, []string{"Título 1", "Título 2"}, metrics[0].Headlines)
	assert.Equal(t, []string{"Descrição 1"}, metrics[0].Descriptions)
}

func TestGetAccountMetricsSemResultado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	mockClient.EXPECT().
		Search("123", gomock.Any()).
		Return([]googleadsdomain.GoogleAdsRow{}, nil)

	_, err := service.GetAccountMetrics("123", "2024-03-01", "2024-03-31")
	require.Error(t, err)
}

func TestGetManagerAccountInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	mockClient.EXPECT().
		Search("456", queryMatcher{fragments: []string{"customer.conversion_tracking_setting.conversion_tracking_id"}}).
		Return([]googleadsdomain.GoogleAdsRow{
			{
				Customer: &googleadsdomain.Customer{
					ID:                 456,
					DescriptiveName:    "MCC Principal",
					CurrencyCode:       "BRL",
					TimeZone:           "America/Sao_Paulo",
					Manager:            true,
					Status:             "ENABLED",
					AutoTaggingEnabled: true,
					ConversionTrackingSetting: &googleadsdomain.ConversionTrackingSetting{
						ConversionTrackingID:     999,
						ConversionTrackingStatus: "CONVERSION_TRACKING_MANAGED_BY_SELF",
					},
				},
			},
		}, nil)

	info, err := service.GetManagerAccountInfo("456")
	require.NoError(t, err)

	assert.Equal(t, "456", info.ID)
	assert.Equal(t, "MCC Principal", info.Name)
	assert.Equal(t, "BRL", info.Currency)
	assert.True(t, info.Manager)
	assert.Equal(t, int64(999), info.ConversionTrackingID)
}

func TestTestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	mockClient.EXPECT().ListAccessibleCustomers().Return([]string{"customers/123"}, nil)

	accounts, err := service.TestConnection()
	require.NoError(t, err)
	assert.Equal(t, []string{"customers/123"}, accounts)
}

func TestTestConnectionComFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	service := New(nil, mockClient)

	mockClient.EXPECT().ListAccessibleCustomers().Return(nil, errors.New("credenciais inválidas"))

	accounts, err := service.TestConnection()
	require.Error(t, err)
	assert.Nil(t, accounts)
}
