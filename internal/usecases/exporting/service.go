package exporting

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

// Sufixos das abas de destino. O nome final é {cliente}{sufixo}
const (
	campaignsTabSuffix   = "-campaigns"
	adCreativesTabSuffix = "-ads"
	keywordsTabSuffix    = "-keywords"
	chartTabSuffix       = "-chart"
	accountTabSuffix     = "-account"
)

// Exporter entrega relatórios reconciliados nas abas das planilhas dos
// clientes e orquestra a atualização em lote
type Exporter interface {
	ExportCampaignMetrics(req *domain.ReportRequest) error
	ExportAdCreativeMetrics(req *domain.ReportRequest) error
	ExportKeywordMetrics(req *domain.ReportRequest) error
	ExportPerDayMetrics(req *domain.ReportRequest) error
	ExportAccountMetrics(req *domain.ReportRequest) error
	ExportReport(req *domain.ReportRequest) error
	UpdateAllReports(requests []domain.ReportRequest) (*domain.BatchRun, error)
	LastRun() *domain.BatchRun
}

type Service struct {
	cfg           *config.Config
	reporter      reporting.Reporter
	sheetsService sheets.SheetsIntegrator

	mu      sync.Mutex
	lastRun *domain.BatchRun
}

// NewService cria uma nova instância do serviço de exportação de relatórios
func NewService(cfg *config.Config, reporter reporting.Reporter, sheetsService sheets.SheetsIntegrator) Exporter {
	return &Service{
		cfg:           cfg,
		reporter:      reporter,
		sheetsService: sheetsService,
	}
}

// ExportCampaignMetrics entrega a aba de campanhas da planilha do cliente
func (s *Service) ExportCampaignMetrics(req *domain.ReportRequest) error {
	return s.exportCampaigns(req, nil)
}

// ExportAdCreativeMetrics entrega a aba de anúncios da planilha do cliente
func (s *Service) ExportAdCreativeMetrics(req *domain.ReportRequest) error {
	return s.exportAdCreatives(req, nil)
}

// ExportKeywordMetrics entrega a aba de palavras-chave da planilha do cliente
func (s *Service) ExportKeywordMetrics(req *domain.ReportRequest) error {
	return s.exportKeywords(req, nil)
}

// ExportPerDayMetrics entrega a aba de gráfico da planilha do cliente
func (s *Service) ExportPerDayMetrics(req *domain.ReportRequest) error {
	return s.exportPerDay(req, nil)
}

// ExportAccountMetrics entrega a aba com os totais consolidados da conta
func (s *Service) ExportAccountMetrics(req *domain.ReportRequest) error {
	return s.exportAccount(req, nil)
}

func (s *Service) exportCampaigns(req *domain.ReportRequest, result *domain.ReportRequestResult) error {
	setStatus(result, domain.ReportStatusFetching)
	metrics, err := s.reporter.GetCampaignMetrics(req.CustomerID, periodOf(req), req.Active)
	if err != nil {
		return sourceError("campanhas", req.CustomerID, err)
	}

	setStatus(result, domain.ReportStatusReconciling)
	rows := campaignRows(metrics)

	setStatus(result, domain.ReportStatusDelivering)
	return s.deliver(req.SpreadsheetID, req.Client+campaignsTabSuffix, campaignHeader, rows)
}

// O filtro de ativas se aplica apenas a campanhas e palavras-chave: os textos
// dos anúncios e os totais por dia são entregues por inteiro
func (s *Service) exportAdCreatives(req *domain.ReportRequest, result *domain.ReportRequestResult) error {
	setStatus(result, domain.ReportStatusFetching)
	metrics, err := s.reporter.GetAdCreativeMetrics(req.CustomerID, periodOf(req), false)
	if err != nil {
		return sourceError("anúncios", req.CustomerID, err)
	}

	setStatus(result, domain.ReportStatusReconciling)
	rows := adCreativeRows(metrics)

	setStatus(result, domain.ReportStatusDelivering)
	return s.deliver(req.SpreadsheetID, req.Client+adCreativesTabSuffix, adCreativeHeader, rows)
}

func (s *Service) exportKeywords(req *domain.ReportRequest, result *domain.ReportRequestResult) error {
	setStatus(result, domain.ReportStatusFetching)
	metrics, err := s.reporter.GetKeywordMetrics(req.CustomerID, periodOf(req), req.Active)
	if err != nil {
		return sourceError("palavras-chave", req.CustomerID, err)
	}

	setStatus(result, domain.ReportStatusReconciling)
	rows := keywordRows(metrics)

	setStatus(result, domain.ReportStatusDelivering)
	return s.deliver(req.SpreadsheetID, req.Client+keywordsTabSuffix, keywordHeader, rows)
}

func (s *Service) exportPerDay(req *domain.ReportRequest, result *domain.ReportRequestResult) error {
	setStatus(result, domain.ReportStatusFetching)
	metrics, err := s.reporter.GetPerDayMetrics(req.CustomerID, periodOf(req), false)
	if err != nil {
		return sourceError("totais por dia", req.CustomerID, err)
	}

	setStatus(result, domain.ReportStatusReconciling)
	rows := perDayRows(metrics)

	setStatus(result, domain.ReportStatusDelivering)
	return s.deliver(req.SpreadsheetID, req.Client+chartTabSuffix, perDayHeader, rows)
}

func (s *Service) exportAccount(req *domain.ReportRequest, result *domain.ReportRequestResult) error {
	setStatus(result, domain.ReportStatusFetching)
	metric, err := s.reporter.GetAccountMetrics(req.CustomerID, periodOf(req))
	if err != nil {
		return sourceError("totais da conta", req.CustomerID, err)
	}

	setStatus(result, domain.ReportStatusReconciling)
	rows := accountRows(metric)

	setStatus(result, domain.ReportStatusDelivering)
	return s.deliver(req.SpreadsheetID, req.Client+accountTabSuffix, accountHeader, rows)
}

// deliver limpa a aba e escreve o cabeçalho seguido das linhas. Sem rollback:
// uma falha na escrita deixa a aba vazia até a próxima execução
func (s *Service) deliver(spreadsheetID, tab string, header []string, rows [][]interface{}) error {
	if err := s.sheetsService.ClearTab(spreadsheetID, tab); err != nil {
		return &SinkDeliveryError{SpreadsheetID: spreadsheetID, Tab: tab, Err: err}
	}

	if err := s.sheetsService.WriteTable(spreadsheetID, tab, header, rows); err != nil {
		return &SinkDeliveryError{SpreadsheetID: spreadsheetID, Tab: tab, Err: err}
	}

	return nil
}

func periodOf(req *domain.ReportRequest) domain.ReportPeriod {
	return domain.ReportPeriod{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}

// sourceError embrulha falhas da origem preservando o erro de período
// inválido, que tem tratamento próprio na borda da API
func sourceError(category, customerID string, err error) error {
	if errors.Is(err, reporting.ErrInvalidRange) {
		return err
	}

	return &SourceFetchError{Category: category, CustomerID: customerID, Err: err}
}

func setStatus(result *domain.ReportRequestResult, status domain.ReportStatus) {
	if result == nil {
		return
	}

	result.Status = status
}
