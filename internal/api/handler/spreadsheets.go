package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// reportRequestFromQuery monta a requisição de relatório a partir do parâmetro
// de rota customer_id e da query string
func reportRequestFromQuery(r *http.Request) *domain.ReportRequest {
	query := r.URL.Query()

	return &domain.ReportRequest{
		CustomerID:    httprouter.ParamsFromContext(r.Context()).ByName("customer_id"),
		StartDate:     query.Get("start_date"),
		EndDate:       query.Get("end_date"),
		SpreadsheetID: query.Get("spreadsheet_id"),
		Client:        query.Get("client"),
		Active:        query.Get("active") == "true",
	}
}

func validateReportRequest(req *domain.ReportRequest) bool {
	return req.CustomerID != "" && req.StartDate != "" && req.EndDate != "" &&
		req.SpreadsheetID != "" && req.Client != ""
}

func exportHandler(name string, export func(*domain.ReportRequest) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := reportRequestFromQuery(r)
		if !validateReportRequest(req) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"Informe customer_id, start_date, end_date, spreadsheet_id e client", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id":    req.CustomerID,
			"spreadsheet_id": req.SpreadsheetID,
			"client":         req.Client,
		}).Info("spreadsheets: exporting " + name)

		if err := export(req); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": req.CustomerID,
				"error":       err.Error(),
			}).Error("spreadsheets: failed to export " + name)

			writeReportError(w, err)
			return
		}

		writeJSON(w, logger, map[string]any{
			"message": "Relatório enviado para a planilha com sucesso",
			"client":  req.Client,
		})
	})
}

// SendAccountToSheets entrega a aba com os totais consolidados da conta
func SendAccountToSheets(service exporting.Exporter) http.Handler {
	return exportHandler("account metrics", service.ExportAccountMetrics)
}

// SendCampaignsToSheets entrega a aba de campanhas
func SendCampaignsToSheets(service exporting.Exporter) http.Handler {
	return exportHandler("campaign metrics", service.ExportCampaignMetrics)
}

// SendPerDayToSheets entrega a aba de gráfico com os totais por dia
func SendPerDayToSheets(service exporting.Exporter) http.Handler {
	return exportHandler("per-day metrics", service.ExportPerDayMetrics)
}

// SendKeywordsToSheets entrega a aba de palavras-chave
func SendKeywordsToSheets(service exporting.Exporter) http.Handler {
	return exportHandler("keyword metrics", service.ExportKeywordMetrics)
}

// SendAdCreativesToSheets entrega a aba de anúncios
func SendAdCreativesToSheets(service exporting.Exporter) http.Handler {
	return exportHandler("ad creative metrics", service.ExportAdCreativeMetrics)
}
