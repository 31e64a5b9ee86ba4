package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportsSyncConfig representa a configuração do agendador de atualização de
// relatórios
type ReportsSyncConfig struct {
	CronSchedule string
	BatchFile    string
	SyncEnabled  bool
}

// ReportsSyncService gerencia o agendamento da atualização em lote das
// planilhas de relatórios
type ReportsSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportsSyncConfig
	appConfig           *config.Config
	exporter            exporting.Exporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportsSyncService cria uma nova instância do serviço de atualização
// agendada de relatórios
func NewReportsSyncService(
	exporter exporting.Exporter,
	appConfig *config.Config,
) *ReportsSyncService {
	syncConfig := ReportsSyncConfig{
		CronSchedule: appConfig.ReportsSync.CronSchedule,
		BatchFile:    appConfig.ReportsSync.BatchFile,
		SyncEnabled:  appConfig.ReportsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"batch_file":    syncConfig.BatchFile,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		exporter:    exporter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllReports lê o lote de relatórios do arquivo configurado e o processa
func (s *ReportsSyncService) syncAllReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização agendada dos relatórios")

	requests, err := s.loadBatchFile()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar o lote de relatórios")
		return
	}

	if len(requests) == 0 {
		logrus.Info("Nenhum relatório configurado para atualização agendada")
		return
	}

	run, err := s.exporter.UpdateAllReports(requests)
	if err != nil {
		logrus.WithError(err).Error("Atualização agendada dos relatórios terminou com falha")
	}

	if run != nil {
		logrus.WithFields(logrus.Fields{
			"run_id":   run.ID,
			"status":   run.Status,
			"duration": run.FinishedAt.Sub(run.StartedAt).String(),
		}).Info("Atualização agendada dos relatórios finalizada")
	}
}

// loadBatchFile decodifica a lista de requisições do arquivo JSON configurado
func (s *ReportsSyncService) loadBatchFile() ([]domain.ReportRequest, error) {
	content, err := os.ReadFile(s.config.BatchFile)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo %s: %w", s.config.BatchFile, err)
	}

	var batch struct {
		Data []domain.ReportRequest `json:"data"`
	}
	if err := json.Unmarshal(content, &batch); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o arquivo %s: %w", s.config.BatchFile, err)
	}

	return batch.Data, nil
}

// TriggerManualSync inicia manualmente uma atualização dos relatórios
func (s *ReportsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual dos relatórios")
	go s.syncAllReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"batch_file":             s.config.BatchFile,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
