package googleads

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/adsclient"
	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

const microsPerUnit = 1_000_000.0

type AdsIntegrator interface {
	GetAccountMetrics(customerID string, startDate, endDate string) (*domain.AccountMetric, error)
	GetCampaignMetrics(customerID string, startDate, endDate string, activeOnly bool) ([]domain.CampaignMetric, error)
	GetPerDayMetrics(customerID string, startDate, endDate string) ([]domain.PerDayMetric, error)
	GetKeywordMetrics(customerID string, startDate, endDate string, activeOnly bool) ([]domain.KeywordMetric, error)
	GetAdCreativeMetrics(customerID string, startDate, endDate string) ([]domain.AdCreativeMetric, error)
	GetManagerAccountInfo(managerID string) (*domain.ManagerAccountInfo, error)
	TestConnection() ([]string, error)
}

type AdsService struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) AdsIntegrator {
	return &AdsService{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountMetrics obtém os totais consolidados da conta no período
func (s *AdsService) GetAccountMetrics(customerID string, startDate, endDate string) (*domain.AccountMetric, error) {
	rows, err := s.Client.Search(customerID, accountMetricsQuery(startDate, endDate))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar métricas da conta")
	}

	if len(rows) == 0 {
		return nil, errors.New("nenhuma métrica encontrada para a conta")
	}

	row := rows[0]

	metric := &domain.AccountMetric{}
	if row.Customer != nil {
		metric.CustomerID = row.Customer.ID
		metric.DescriptiveName = row.Customer.DescriptiveName
	}
	if row.Metrics != nil {
		metric.Impressions = row.Metrics.Impressions
		metric.Clicks = row.Metrics.Clicks
		metric.Cost = costFromMicros(row.Metrics.CostMicros)
		metric.Conversions = row.Metrics.Conversions
		metric.Ctr = row.Metrics.Ctr
		metric.AverageCpc = valueFromMicros(row.Metrics.AverageCpc)
		metric.AverageCpa = valueFromMicros(row.Metrics.CostPerConversion)
	}

	return metric, nil
}

// GetCampaignMetrics obtém as métricas diárias por campanha e grupo de anúncios
func (s *AdsService) GetCampaignMetrics(customerID string, startDate, endDate string, activeOnly bool) ([]domain.CampaignMetric, error) {
	rows, err := s.Client.Search(customerID, campaignMetricsQuery(startDate, endDate, activeOnly))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar métricas de campanhas")
	}

	metrics := make([]domain.CampaignMetric, 0, len(rows))
	for _, row := range rows {
		metric := domain.CampaignMetric{}

		if row.Segments != nil {
			metric.Date = row.Segments.Date
			metric.DayOfWeek = row.Segments.DayOfWeek
		}
		if row.Campaign != nil {
			metric.CampaignID = row.Campaign.ID
			metric.CampaignName = row.Campaign.Name
			metric.Status = row.Campaign.Status
		}
		if row.AdGroup != nil {
			metric.AdGroupName = row.AdGroup.Name
		}
		if row.Metrics != nil {
			metric.Impressions = row.Metrics.Impressions
			metric.Clicks = row.Metrics.Clicks
			metric.Cost = costFromMicros(row.Metrics.CostMicros)
			metric.Conversions = row.Metrics.Conversions
			metric.Ctr = row.Metrics.Ctr
			metric.AverageCpc = valueFromMicros(row.Metrics.AverageCpc)
			metric.AverageCpa = valueFromMicros(row.Metrics.CostPerConversion)
		}

		metrics = append(metrics, metric)
	}

	return metrics, nil
}

// GetPerDayMetrics obtém os totais da conta por dia, usados na aba de gráfico
func (s *AdsService) GetPerDayMetrics(customerID string, startDate, endDate string) ([]domain.PerDayMetric, error) {
	rows, err := s.Client.Search(customerID, perDayMetricsQuery(startDate, endDate))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar métricas por dia")
	}

	metrics := make([]domain.PerDayMetric, 0, len(rows))
	for _, row := range rows {
		metric := domain.PerDayMetric{}

		if row.Segments != nil {
			metric.Date = row.Segments.Date
			metric.Hour = row.Segments.Hour
			metric.DayOfWeek = dayOfWeekFromDate(row.Segments.Date)
		}
		if row.Metrics != nil {
			metric.Impressions = row.Metrics.Impressions
			metric.Clicks = row.Metrics.Clicks
			metric.Conversions = row.Metrics.Conversions
			metric.Cost = costFromMicros(row.Metrics.CostMicros)
		}

		metrics = append(metrics, metric)
	}

	return metrics, nil
}

// GetKeywordMetrics obtém as métricas diárias por palavra-chave
func (s *AdsService) GetKeywordMetrics(customerID string, startDate, endDate string, activeOnly bool) ([]domain.KeywordMetric, error) {
	rows, err := s.Client.Search(customerID, keywordMetricsQuery(startDate, endDate, activeOnly))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar métricas de palavras-chave")
	}

	metrics := make([]domain.KeywordMetric, 0, len(rows))
	for _, row := range rows {
		metric := domain.KeywordMetric{}

		if row.Segments != nil {
			metric.Date = row.Segments.Date
			metric.DayOfWeek = row.Segments.DayOfWeek
		}
		if row.Campaign != nil {
			metric.CampaignName = row.Campaign.Name
		}
		if row.AdGroup != nil {
			metric.AdGroupName = row.AdGroup.Name
		}
		if row.AdGroupCriterion != nil && row.AdGroupCriterion.Keyword != nil {
			metric.KeywordText = row.AdGroupCriterion.Keyword.Text
			metric.MatchType = row.AdGroupCriterion.Keyword.MatchType
		}
		if row.Metrics != nil {
			metric.Impressions = row.Metrics.Impressions
			metric.Clicks = row.Metrics.Clicks
			metric.Cost = costFromMicros(row.Metrics.CostMicros)
			metric.AverageCpc = valueFromMicros(row.Metrics.AverageCpc)
			metric.Conversions = row.Metrics.Conversions
			metric.ConversionRate = row.Metrics.ConversionsFromInteractionsRate
		}

		metrics = append(metrics, metric)
	}

	return metrics, nil
}

// GetAdCreativeMetrics obtém os títulos e descrições dos anúncios responsivos
// com suas métricas diárias
func (s *AdsService) GetAdCreativeMetrics(customerID string, startDate, endDate string) ([]domain.AdCreativeMetric, error) {
	rows, err := s.Client.Search(customerID, adCreativeMetricsQuery(startDate, endDate))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar métricas de anúncios")
	}

	metrics := make([]domain.AdCreativeMetric, 0, len(rows))
	for _, row := range rows {
		metric := domain.AdCreativeMetric{}

		if row.Segments != nil {
			metric.Date = row.Segments.Date
		}
		if row.Campaign != nil {
			metric.CampaignName = row.Campaign.Name
		}
		if row.AdGroupAd != nil && row.AdGroupAd.Ad != nil {
			metric.AdName = row.AdGroupAd.Ad.Name

			if rsa := row.AdGroupAd.Ad.ResponsiveSearchAd; rsa != nil {
				metric.Headlines = assetTexts(rsa.Headlines)
				metric.Descriptions = assetTexts(rsa.Descriptions)
			}
		}
		if row.Metrics != nil {
			metric.Clicks = row.Metrics.Clicks
			metric.Impressions = row.Metrics.Impressions
			metric.Conversions = row.Metrics.Conversions
		}

		metrics = append(metrics, metric)
	}

	return metrics, nil
}

// GetManagerAccountInfo obtém os dados gerais de uma conta administradora
func (s *AdsService) GetManagerAccountInfo(managerID string) (*domain.ManagerAccountInfo, error) {
	rows, err := s.Client.Search(managerID, managerAccountQuery())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar a conta administradora")
	}

	if len(rows) == 0 || rows[0].Customer == nil {
		return nil, errors.New("conta administradora não encontrada")
	}

	customer := rows[0].Customer

	info := &domain.ManagerAccountInfo{
		ID:                  strconv.FormatInt(customer.ID, 10),
		Name:                customer.DescriptiveName,
		Currency:            customer.CurrencyCode,
		TimeZone:            customer.TimeZone,
		TestAccount:         customer.TestAccount,
		Status:              customer.Status,
		Manager:             customer.Manager,
		AutoTaggingEnabled:  customer.AutoTaggingEnabled,
		TrackingURLTemplate: customer.TrackingURLTemplate,
		FinalURLSuffix:      customer.FinalURLSuffix,
	}

	if customer.ConversionTrackingSetting != nil {
		info.ConversionTrackingID = customer.ConversionTrackingSetting.ConversionTrackingID
		info.ConversionTrackingStatus = customer.ConversionTrackingSetting.ConversionTrackingStatus
	}

	return info, nil
}

// TestConnection verifica as credenciais configuradas listando os resource
// names das contas acessíveis
func (s *AdsService) TestConnection() ([]string, error) {
	accounts, err := s.Client.ListAccessibleCustomers()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as contas acessíveis")
	}

	return accounts, nil
}

func assetTexts(assets []googleadsdomain.AdTextAsset) []string {
	texts := make([]string, 0, len(assets))
	for _, asset := range assets {
		texts = append(texts, asset.Text)
	}

	return texts
}

func costFromMicros(micros int64) float64 {
	return utils.RoundWithTwoDecimalPlace(float64(micros) / microsPerUnit)
}

func valueFromMicros(micros float64) float64 {
	return utils.RoundWithTwoDecimalPlace(micros / microsPerUnit)
}

func dayOfWeekFromDate(date string) string {
	parsed, err := utils.ParseDate(date)
	if err != nil || parsed == nil || parsed.IsZero() {
		return domain.UnknownDimension
	}

	return domain.WeekdayName(*parsed)
}
