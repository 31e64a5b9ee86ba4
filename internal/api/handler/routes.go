package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v2/reports/test",
			Method:  http.MethodGet,
			Handler: TestConnection(service),
		},
		{
			Path:    "/v2/reports/manager/:id",
			Method:  http.MethodGet,
			Handler: GetManagerAccount(service),
		},
		{
			Path:    "/v2/reports/account/:customer_id",
			Method:  http.MethodGet,
			Handler: GetAccountMetrics(service),
		},
		{
			Path:    "/v2/reports/campaigns/:customer_id",
			Method:  http.MethodGet,
			Handler: GetCampaignMetrics(service),
		},
		{
			Path:    "/v2/reports/days/:customer_id",
			Method:  http.MethodGet,
			Handler: GetPerDayMetrics(service),
		},
		{
			Path:    "/v2/reports/keywords/:customer_id",
			Method:  http.MethodGet,
			Handler: GetKeywordMetrics(service),
		},
		{
			Path:    "/v2/reports/headlines/:customer_id",
			Method:  http.MethodGet,
			Handler: GetAdCreativeMetrics(service),
		},
	}
}

func Spreadsheets(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v2/spreadsheets/account/:customer_id",
			Method:  http.MethodPost,
			Handler: SendAccountToSheets(service),
		},
		{
			Path:    "/v2/spreadsheets/campaign/:customer_id",
			Method:  http.MethodPost,
			Handler: SendCampaignsToSheets(service),
		},
		{
			Path:    "/v2/spreadsheets/days/:customer_id",
			Method:  http.MethodPost,
			Handler: SendPerDayToSheets(service),
		},
		{
			Path:    "/v2/spreadsheets/keywords/:customer_id",
			Method:  http.MethodPost,
			Handler: SendKeywordsToSheets(service),
		},
		{
			Path:    "/v2/spreadsheets/headlines/:customer_id",
			Method:  http.MethodPost,
			Handler: SendAdCreativesToSheets(service),
		},
	}
}

func ReportBatch(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v2/reports/generate",
			Method:  http.MethodPost,
			Handler: GenerateReports(service),
		},
		{
			Path:    "/v2/reports/runs/last",
			Method:  http.MethodGet,
			Handler: GetLastRun(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
