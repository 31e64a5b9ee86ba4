package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsmocks "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetCampaignMetricsCobreTodoOCalendario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	period := domain.ReportPeriod{StartDate: "2024-03-01", EndDate: "2024-03-03"}

	mockAds.EXPECT().
		GetCampaignMetrics("123", "2024-03-01", "2024-03-03", false).
		Return([]domain.CampaignMetric{
			{Date: "2024-03-01", CampaignName: "Campanha A", Impressions: 10},
			{Date: "2024-03-03", CampaignName: "Campanha A", Impressions: 4},
		}, nil)

	result, err := service.GetCampaignMetrics("123", period, false)
	require.NoError(t, err)

	// Todo dia do período aparece ao menos uma vez
	require.Len(t, result, 3)
	assert.Equal(t, "2024-03-01", result[0].Date)
	assert.Equal(t, "2024-03-02", result[1].Date)
	assert.Equal(t, domain.UnknownDimension, result[1].CampaignName)
	assert.Equal(t, "2024-03-03", result[2].Date)
}

func TestGetCampaignMetricsFiltraInativasAntesDeReconciliar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	period := domain.ReportPeriod{StartDate: "2024-03-01", EndDate: "2024-03-01"}

	// Uma linha sem impressões escapou do filtro da origem
	mockAds.EXPECT().
		GetCampaignMetrics("123", "2024-03-01", "2024-03-01", true).
		Return([]domain.CampaignMetric{
			{Date: "2024-03-01", CampaignName: "Sem tráfego", Impressions: 0},
		}, nil)

	result, err := service.GetCampaignMetrics("123", period, true)
	require.NoError(t, err)

	// A linha inativa cai e o dia ganha uma linha sintetizada
	require.Len(t, result, 1)
	assert.Equal(t, domain.UnknownDimension, result[0].CampaignName)
}

func TestGetCampaignMetricsPeriodoInvalidoNaoConsultaOrigem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	period := domain.ReportPeriod{StartDate: "2024-03-05", EndDate: "2024-03-01"}

	_, err := service.GetCampaignMetrics("123", period, false)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestGetCampaignMetricsPropagaErroDaOrigem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	period := domain.ReportPeriod{StartDate: "2024-03-01", EndDate: "2024-03-02"}

	sourceErr := errors.New("quota excedida")
	mockAds.EXPECT().
		GetCampaignMetrics("123", "2024-03-01", "2024-03-02", false).
		Return(nil, sourceErr)

	_, err := service.GetCampaignMetrics("123", period, false)
	require.ErrorIs(t, err, sourceErr)
}

func TestGetPerDayMetricsReconcilia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	period := domain.ReportPeriod{StartDate: "2024-03-01", EndDate: "2024-03-02"}

	mockAds.EXPECT().
		GetPerDayMetrics("123", "2024-03-01", "2024-03-02").
		Return([]domain.PerDayMetric{
			{Date: "2024-03-02", Impressions: 100, Clicks: 5, Cost: 12.34, DayOfWeek: "SATURDAY"},
		}, nil)

	result, err := service.GetPerDayMetrics("123", period, false)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "2024-03-01", result[0].Date)
	assert.Equal(t, "FRIDAY", result[0].DayOfWeek)
	assert.Zero(t, result[0].Impressions)
	assert.Equal(t, int64(100), result[1].Impressions)
}

func TestGetAccountMetricsNaoReconcilia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	period := domain.ReportPeriod{StartDate: "2024-03-01", EndDate: "2024-03-31"}

	expected := &domain.AccountMetric{CustomerID: 123, DescriptiveName: "Conta X", Impressions: 10}
	mockAds.EXPECT().
		GetAccountMetrics("123", "2024-03-01", "2024-03-31").
		Return(expected, nil)

	result, err := service.GetAccountMetrics("123", period)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetManagerAccountInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	expected := &domain.ManagerAccountInfo{ID: "456", Name: "MCC", Manager: true}
	mockAds.EXPECT().GetManagerAccountInfo("456").Return(expected, nil)

	result, err := service.GetManagerAccountInfo("456")
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestTestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
	service := NewService(nil, mockAds)

	mockAds.EXPECT().TestConnection().Return([]string{"customers/123", "customers/456"}, nil)

	accounts, err := service.TestConnection()
	require.NoError(t, err)
	assert.Equal(t, []string{"customers/123", "customers/456"}, accounts)
}
