package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

type generateReportsRequest struct {
	Data []domain.ReportRequest `json:"data"`
}

// GenerateReports processa um lote de relatórios na ordem recebida. A primeira
// falha aborta o lote e o resultado parcial é devolvido nos detalhes do erro
func GenerateReports(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body generateReportsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.WithField("error", err.Error()).Warn("reports: invalid batch body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if len(body.Data) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma requisição de relatório informada", nil)
			return
		}

		for _, req := range body.Data {
			if !validateReportRequest(&req) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
					"Toda requisição precisa de customer_id, start_date, end_date, spreadsheet_id e client", nil)
				return
			}
		}

		logger.WithField("requests", len(body.Data)).Info("reports: generating report batch")

		run, err := service.UpdateAllReports(body.Data)
		if err != nil {
			logger.WithField("error", err.Error()).Error("reports: report batch failed")

			var details any
			if run != nil {
				details = run
			}

			apiErrors.WriteError(w, reportErrorCode(err), err.Error(), details)
			return
		}

		writeJSON(w, logger, run)
	})
}

// GetLastRun retorna o resultado da última execução em lote
func GetLastRun(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		run := service.LastRun()
		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhuma execução em lote desde que o serviço subiu", nil)
			return
		}

		writeJSON(w, logger, run)
	})
}
