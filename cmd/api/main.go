package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/ads-report-api/internal/api"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	sheetsClient, err := sheetsclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente de planilhas")
	}
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	reportService := reporting.NewService(cfg, adsIntegrator)
	exportService := exporting.NewService(cfg, reportService, sheetsIntegrator)

	// Inicializa o agendador de atualização dos relatórios
	reportsSyncService := scheduler.NewReportsSyncService(exportService, cfg)

	if err := reportsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de relatórios")
	} else {
		logrus.Info("Agendador de atualização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		exportService,
		reportsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
