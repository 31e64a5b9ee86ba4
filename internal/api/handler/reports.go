package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// periodFromQuery monta o período a partir dos parâmetros start_date e
// end_date da query string
func periodFromQuery(r *http.Request) domain.ReportPeriod {
	return domain.ReportPeriod{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}

func activeFromQuery(r *http.Request) bool {
	return r.URL.Query().Get("active") == "true"
}

// writeReportError traduz a taxonomia de erros dos relatórios para os códigos
// da API
func writeReportError(w http.ResponseWriter, err error) {
	var sourceErr *exporting.SourceFetchError
	var sinkErr *exporting.SinkDeliveryError

	switch {
	case errors.Is(err, reporting.ErrInvalidRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.As(err, &sourceErr):
		apiErrors.WriteError(w, apiErrors.ErrSourceFetch, err.Error(), map[string]any{
			"category":    sourceErr.Category,
			"customer_id": sourceErr.CustomerID,
		})
	case errors.As(err, &sinkErr):
		apiErrors.WriteError(w, apiErrors.ErrSinkDelivery, err.Error(), map[string]any{
			"spreadsheet_id": sinkErr.SpreadsheetID,
			"tab":            sinkErr.Tab,
		})
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

// reportErrorCode devolve apenas o código da taxonomia, para respostas que
// carregam detalhes próprios
func reportErrorCode(err error) string {
	var sourceErr *exporting.SourceFetchError
	var sinkErr *exporting.SinkDeliveryError

	switch {
	case errors.Is(err, reporting.ErrInvalidRange):
		return apiErrors.ErrInvalidPeriod
	case errors.As(err, &sourceErr):
		return apiErrors.ErrSourceFetch
	case errors.As(err, &sinkErr):
		return apiErrors.ErrSinkDelivery
	default:
		return apiErrors.ErrInternalServer
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("reports: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// TestConnection verifica a conectividade com a API do Google Ads e retorna
// as contas acessíveis pela credencial configurada
func TestConnection(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: testing source connection")

		accounts, err := service.TestConnection()
		if err != nil {
			logger.WithField("error", err.Error()).Error("reports: source connection test failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		writeJSON(w, logger, map[string]any{"accessible_customers": accounts})
	})
}

// GetManagerAccount retorna os dados gerais de uma conta administradora
func GetManagerAccount(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("manager_id", id).Info("reports: fetching manager account info")

		info, err := service.GetManagerAccountInfo(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"manager_id": id,
				"error":      err.Error(),
			}).Error("reports: failed to fetch manager account info")

			apiErrors.WriteError(w, apiErrors.ErrSourceFetch, err.Error(), nil)
			return
		}

		writeJSON(w, logger, info)
	})
}

// GetAccountMetrics retorna os totais consolidados da conta no período
func GetAccountMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customer_id")
		period := periodFromQuery(r)

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"start_date":  period.StartDate,
			"end_date":    period.EndDate,
		}).Info("reports: fetching account metrics")

		metric, err := service.GetAccountMetrics(customerID, period)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to fetch account metrics")

			writeSeriesError(w, err)
			return
		}

		writeJSON(w, logger, metric)
	})
}

// GetCampaignMetrics retorna a série diária de campanhas reconciliada com o
// calendário do período
func GetCampaignMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customer_id")
		period := periodFromQuery(r)

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"start_date":  period.StartDate,
			"end_date":    period.EndDate,
		}).Info("reports: fetching campaign metrics")

		metrics, err := service.GetCampaignMetrics(customerID, period, activeFromQuery(r))
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to fetch campaign metrics")

			writeSeriesError(w, err)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

// GetPerDayMetrics retorna os totais diários da conta reconciliados com o
// calendário do período
func GetPerDayMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customer_id")
		period := periodFromQuery(r)

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"start_date":  period.StartDate,
			"end_date":    period.EndDate,
		}).Info("reports: fetching per-day metrics")

		metrics, err := service.GetPerDayMetrics(customerID, period, activeFromQuery(r))
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to fetch per-day metrics")

			writeSeriesError(w, err)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

// GetKeywordMetrics retorna a série diária de palavras-chave reconciliada com
// o calendário do período
func GetKeywordMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customer_id")
		period := periodFromQuery(r)

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"start_date":  period.StartDate,
			"end_date":    period.EndDate,
		}).Info("reports: fetching keyword metrics")

		metrics, err := service.GetKeywordMetrics(customerID, period, activeFromQuery(r))
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to fetch keyword metrics")

			writeSeriesError(w, err)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

// GetAdCreativeMetrics retorna a série diária de anúncios reconciliada com o
// calendário do período
func GetAdCreativeMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("customer_id")
		period := periodFromQuery(r)

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"start_date":  period.StartDate,
			"end_date":    period.EndDate,
		}).Info("reports: fetching ad creative metrics")

		metrics, err := service.GetAdCreativeMetrics(customerID, period, activeFromQuery(r))
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("reports: failed to fetch ad creative metrics")

			writeSeriesError(w, err)
			return
		}

		writeJSON(w, logger, metrics)
	})
}

// writeSeriesError trata erros das consultas de séries: período inválido tem
// código próprio e o restante é falha da origem
func writeSeriesError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrInvalidRange) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrSourceFetch, err.Error(), nil)
}
