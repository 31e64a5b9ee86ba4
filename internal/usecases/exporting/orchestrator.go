package exporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// ExportReport entrega as quatro abas de um relatório, sempre na mesma ordem:
// campanhas, anúncios, palavras-chave e gráfico
func (s *Service) ExportReport(req *domain.ReportRequest) error {
	return s.processRequest(req, nil)
}

// UpdateAllReports processa um lote de relatórios na ordem recebida. A
// primeira falha aborta o lote inteiro: as requisições restantes permanecem
// pendentes e as abas já escritas não são revertidas
func (s *Service) UpdateAllReports(requests []domain.ReportRequest) (*domain.BatchRun, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o identificador do lote")
	}

	run := &domain.BatchRun{
		ID:        runID,
		StartedAt: time.Now(),
		Status:    domain.ReportStatusPending,
		Results:   make([]domain.ReportRequestResult, 0, len(requests)),
	}

	for _, req := range requests {
		run.Results = append(run.Results, domain.ReportRequestResult{
			CustomerID: req.CustomerID,
			Client:     req.Client,
			Status:     domain.ReportStatusPending,
		})
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"requests": len(requests),
	}).Info("Iniciando atualização do lote de relatórios")

	var failed error
	for i := range requests {
		result := &run.Results[i]

		if err := s.processRequest(&requests[i], result); err != nil {
			result.Status = domain.ReportStatusFailed
			result.Error = err.Error()
			failed = err

			logrus.WithError(err).WithFields(logrus.Fields{
				"run_id":      runID,
				"customer_id": requests[i].CustomerID,
				"client":      requests[i].Client,
			}).Error("Falha ao atualizar relatório, abortando o lote")

			break
		}

		result.Status = domain.ReportStatusDone

		logrus.WithFields(logrus.Fields{
			"run_id":      runID,
			"customer_id": requests[i].CustomerID,
			"client":      requests[i].Client,
		}).Info("Relatório atualizado com sucesso")
	}

	run.FinishedAt = time.Now()
	run.Status = domain.ReportStatusDone
	if failed != nil {
		run.Status = domain.ReportStatusFailed
	}

	s.mu.Lock()
	s.lastRun = run
	s.mu.Unlock()

	return run, failed
}

// LastRun retorna o resultado da última execução em lote, ou nil se nenhuma
// ocorreu desde que o processo subiu
func (s *Service) LastRun() *domain.BatchRun {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastRun
}

func (s *Service) processRequest(req *domain.ReportRequest, result *domain.ReportRequestResult) error {
	steps := []func(*domain.ReportRequest, *domain.ReportRequestResult) error{
		s.exportCampaigns,
		s.exportAdCreatives,
		s.exportKeywords,
		s.exportPerDay,
	}

	for _, step := range steps {
		if err := step(req, result); err != nil {
			return err
		}
	}

	return nil
}
