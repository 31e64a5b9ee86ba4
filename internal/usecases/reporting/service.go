package reporting

import (
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Reporter expõe as séries de métricas já reconciliadas com o calendário do
// período, prontas para entrega
type Reporter interface {
	GetAccountMetrics(customerID string, period domain.ReportPeriod) (*domain.AccountMetric, error)
	GetCampaignMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.CampaignMetric, error)
	GetPerDayMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.PerDayMetric, error)
	GetKeywordMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.KeywordMetric, error)
	GetAdCreativeMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.AdCreativeMetric, error)
	GetManagerAccountInfo(managerID string) (*domain.ManagerAccountInfo, error)
	TestConnection() ([]string, error)
}

type Service struct {
	cfg        *config.Config
	adsService googleads.AdsIntegrator
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(cfg *config.Config, adsService googleads.AdsIntegrator) Reporter {
	return &Service{
		cfg:        cfg,
		adsService: adsService,
	}
}

// GetAccountMetrics obtém os totais consolidados da conta no período. Não há
// dimensão de data no resultado, então a série não passa pela reconciliação
func (s *Service) GetAccountMetrics(customerID string, period domain.ReportPeriod) (*domain.AccountMetric, error) {
	if _, err := ExpandCalendar(period.StartDate, period.EndDate); err != nil {
		return nil, err
	}

	return s.adsService.GetAccountMetrics(customerID, period.StartDate, period.EndDate)
}

// GetCampaignMetrics obtém as métricas diárias de campanhas com uma linha
// sintetizada para cada dia sem atividade
func (s *Service) GetCampaignMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.CampaignMetric, error) {
	calendar, err := ExpandCalendar(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	metrics, err := s.adsService.GetCampaignMetrics(customerID, period.StartDate, period.EndDate, activeOnly)
	if err != nil {
		return nil, err
	}

	if activeOnly {
		metrics = filterActive(metrics, func(m domain.CampaignMetric) int64 { return m.Impressions })
	}

	return reconcileByDate(calendar, metrics,
		func(m domain.CampaignMetric) string { return m.Date },
		domain.CampaignMetricPlaceholder,
	), nil
}

// GetPerDayMetrics obtém os totais diários da conta com uma linha sintetizada
// para cada dia sem atividade
func (s *Service) GetPerDayMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.PerDayMetric, error) {
	calendar, err := ExpandCalendar(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	metrics, err := s.adsService.GetPerDayMetrics(customerID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	if activeOnly {
		metrics = filterActive(metrics, func(m domain.PerDayMetric) int64 { return m.Impressions })
	}

	return reconcileByDate(calendar, metrics,
		func(m domain.PerDayMetric) string { return m.Date },
		domain.PerDayMetricPlaceholder,
	), nil
}

// GetKeywordMetrics obtém as métricas diárias de palavras-chave com uma linha
// sintetizada para cada dia sem atividade
func (s *Service) GetKeywordMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.KeywordMetric, error) {
	calendar, err := ExpandCalendar(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	metrics, err := s.adsService.GetKeywordMetrics(customerID, period.StartDate, period.EndDate, activeOnly)
	if err != nil {
		return nil, err
	}

	if activeOnly {
		metrics = filterActive(metrics, func(m domain.KeywordMetric) int64 { return m.Impressions })
	}

	return reconcileByDate(calendar, metrics,
		func(m domain.KeywordMetric) string { return m.Date },
		domain.KeywordMetricPlaceholder,
	), nil
}

// GetAdCreativeMetrics obtém os títulos e descrições dos anúncios com uma
// linha sintetizada para cada dia sem atividade
func (s *Service) GetAdCreativeMetrics(customerID string, period domain.ReportPeriod, activeOnly bool) ([]domain.AdCreativeMetric, error) {
	calendar, err := ExpandCalendar(period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	metrics, err := s.adsService.GetAdCreativeMetrics(customerID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	if activeOnly {
		metrics = filterActive(metrics, func(m domain.AdCreativeMetric) int64 { return m.Impressions })
	}

	return reconcileByDate(calendar, metrics,
		func(m domain.AdCreativeMetric) string { return m.Date },
		domain.AdCreativeMetricPlaceholder,
	), nil
}

// GetManagerAccountInfo obtém os dados gerais de uma conta administradora
func (s *Service) GetManagerAccountInfo(managerID string) (*domain.ManagerAccountInfo, error) {
	return s.adsService.GetManagerAccountInfo(managerID)
}

// TestConnection verifica a conectividade com a API do Google Ads e retorna
// os resource names das contas acessíveis pela credencial configurada
func (s *Service) TestConnection() ([]string, error) {
	return s.adsService.TestConnection()
}
