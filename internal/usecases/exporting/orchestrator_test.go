package exporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsmocks "github.com/vfg2006/ads-report-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/ads-report-api/internal/domain"
	reportingmocks "github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

// expectFullRequest prepara as expectativas de uma requisição processada por
// inteiro: as quatro categorias buscadas e entregues na ordem fixa
func expectFullRequest(mockReporter *reportingmocks.MockReporter, mockSheets *sheetsmocks.MockSheetsIntegrator, customerID, spreadsheetID, client string) {
	mockReporter.EXPECT().GetCampaignMetrics(customerID, gomock.Any(), gomock.Any()).Return([]domain.CampaignMetric{}, nil)
	mockSheets.EXPECT().ClearTab(spreadsheetID, client+"-campaigns").Return(nil)
	mockSheets.EXPECT().WriteTable(spreadsheetID, client+"-campaigns", campaignHeader, gomock.Any()).Return(nil)

	mockReporter.EXPECT().GetAdCreativeMetrics(customerID, gomock.Any(), gomock.Any()).Return([]domain.AdCreativeMetric{}, nil)
	mockSheets.EXPECT().ClearTab(spreadsheetID, client+"-ads").Return(nil)
	mockSheets.EXPECT().WriteTable(spreadsheetID, client+"-ads", adCreativeHeader, gomock.Any()).Return(nil)

	mockReporter.EXPECT().GetKeywordMetrics(customerID, gomock.Any(), gomock.Any()).Return([]domain.KeywordMetric{}, nil)
	mockSheets.EXPECT().ClearTab(spreadsheetID, client+"-keywords").Return(nil)
	mockSheets.EXPECT().WriteTable(spreadsheetID, client+"-keywords", keywordHeader, gomock.Any()).Return(nil)

	mockReporter.EXPECT().GetPerDayMetrics(customerID, gomock.Any(), gomock.Any()).Return([]domain.PerDayMetric{}, nil)
	mockSheets.EXPECT().ClearTab(spreadsheetID, client+"-chart").Return(nil)
	mockSheets.EXPECT().WriteTable(spreadsheetID, client+"-chart", perDayHeader, gomock.Any()).Return(nil)
}

func TestUpdateAllReportsProcessaTodoOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	service := NewService(nil, mockReporter, mockSheets)

	expectFullRequest(mockReporter, mockSheets, "111", "sheet-1", "acme")
	expectFullRequest(mockReporter, mockSheets, "222", "sheet-2", "globex")

	requests := []domain.ReportRequest{
		{CustomerID: "111", StartDate: "2024-03-01", EndDate: "2024-03-02", SpreadsheetID: "sheet-1", Client: "acme"},
		{CustomerID: "222", StartDate: "2024-03-01", EndDate: "2024-03-02", SpreadsheetID: "sheet-2", Client: "globex"},
	}

	run, err := service.UpdateAllReports(requests)
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, domain.ReportStatusDone, run.Status)
	require.Len(t, run.Results, 2)
	assert.Equal(t, domain.ReportStatusDone, run.Results[0].Status)
	assert.Equal(t, domain.ReportStatusDone, run.Results[1].Status)

	// A execução fica disponível para consulta
	assert.Equal(t, run, service.LastRun())
}

func TestUpdateAllReportsPrimeiraFalhaAbortaOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	service := NewService(nil, mockReporter, mockSheets)

	// Primeira requisição completa com sucesso
	expectFullRequest(mockReporter, mockSheets, "111", "sheet-1", "acme")

	// Segunda requisição: campanhas e anúncios entregues, palavras-chave falha
	mockReporter.EXPECT().GetCampaignMetrics("222", gomock.Any(), gomock.Any()).Return([]domain.CampaignMetric{}, nil)
	mockSheets.EXPECT().ClearTab("sheet-2", "globex-campaigns").Return(nil)
	mockSheets.EXPECT().WriteTable("sheet-2", "globex-campaigns", campaignHeader, gomock.Any()).Return(nil)

	mockReporter.EXPECT().GetAdCreativeMetrics("222", gomock.Any(), gomock.Any()).Return([]domain.AdCreativeMetric{}, nil)
	mockSheets.EXPECT().ClearTab("sheet-2", "globex-ads").Return(nil)
	mockSheets.EXPECT().WriteTable("sheet-2", "globex-ads", adCreativeHeader, gomock.Any()).Return(nil)

	mockReporter.EXPECT().GetKeywordMetrics("222", gomock.Any(), gomock.Any()).Return(nil, errors.New("quota excedida"))

	requests := []domain.ReportRequest{
		{CustomerID: "111", StartDate: "2024-03-01", EndDate: "2024-03-02", SpreadsheetID: "sheet-1", Client: "acme"},
		{CustomerID: "222", StartDate: "2024-03-01", EndDate: "2024-03-02", SpreadsheetID: "sheet-2", Client: "globex"},
		{CustomerID: "333", StartDate: "2024-03-01", EndDate: "2024-03-02", SpreadsheetID: "sheet-3", Client: "initech"},
	}

	run, err := service.UpdateAllReports(requests)

	// A falha é reportada como falha de origem e aborta o restante do lote
	var sourceErr *SourceFetchError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, "palavras-chave", sourceErr.Category)

	require.NotNil(t, run)
	assert.Equal(t, domain.ReportStatusFailed, run.Status)
	require.Len(t, run.Results, 3)
	assert.Equal(t, domain.ReportStatusDone, run.Results[0].Status)
	assert.Equal(t, domain.ReportStatusFailed, run.Results[1].Status)
	assert.NotEmpty(t, run.Results[1].Error)

	// A terceira requisição nunca foi processada
	assert.Equal(t, domain.ReportStatusPending, run.Results[2].Status)
}

func TestExportReportEntregaAsQuatroAbasEmOrdem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	service := NewService(nil, mockReporter, mockSheets)

	req := newReportRequest()

	mockReporter.EXPECT().GetCampaignMetrics("123", gomock.Any(), gomock.Any()).Return([]domain.CampaignMetric{}, nil)
	mockReporter.EXPECT().GetAdCreativeMetrics("123", gomock.Any(), gomock.Any()).Return([]domain.AdCreativeMetric{}, nil)
	mockReporter.EXPECT().GetKeywordMetrics("123", gomock.Any(), gomock.Any()).Return([]domain.KeywordMetric{}, nil)
	mockReporter.EXPECT().GetPerDayMetrics("123", gomock.Any(), gomock.Any()).Return([]domain.PerDayMetric{}, nil)

	// Ordem fixa das abas: campanhas, anúncios, palavras-chave e gráfico
	gomock.InOrder(
		mockSheets.EXPECT().ClearTab("sheet-1", "acme-campaigns").Return(nil),
		mockSheets.EXPECT().WriteTable("sheet-1", "acme-campaigns", campaignHeader, gomock.Any()).Return(nil),
		mockSheets.EXPECT().ClearTab("sheet-1", "acme-ads").Return(nil),
		mockSheets.EXPECT().WriteTable("sheet-1", "acme-ads", adCreativeHeader, gomock.Any()).Return(nil),
		mockSheets.EXPECT().ClearTab("sheet-1", "acme-keywords").Return(nil),
		mockSheets.EXPECT().WriteTable("sheet-1", "acme-keywords", keywordHeader, gomock.Any()).Return(nil),
		mockSheets.EXPECT().ClearTab("sheet-1", "acme-chart").Return(nil),
		mockSheets.EXPECT().WriteTable("sheet-1", "acme-chart", perDayHeader, gomock.Any()).Return(nil),
	)

	err := service.ExportReport(req)
	require.NoError(t, err)
}

func TestLastRunSemExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(nil, reportingmocks.NewMockReporter(ctrl), sheetsmocks.NewMockSheetsIntegrator(ctrl))

	assert.Nil(t, service.LastRun())
}
