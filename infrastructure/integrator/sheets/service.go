package sheets

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/ads-report-api/internal/config"
)

type SheetsIntegrator interface {
	ClearTab(spreadsheetID string, tab string) error
	WriteTable(spreadsheetID string, tab string, header []string, rows [][]interface{}) error
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SheetsService) ClearTab(spreadsheetID string, tab string) error {
	if err := s.Client.ClearTab(spreadsheetID, tab); err != nil {
		return errors.Wrap(err, "erro ao limpar a aba da planilha")
	}

	return nil
}

// WriteTable escreve o cabeçalho na primeira linha da aba seguido das linhas
// de dados, na ordem recebida
func (s *SheetsService) WriteTable(spreadsheetID string, tab string, header []string, rows [][]interface{}) error {
	values := make([][]interface{}, 0, len(rows)+1)

	headerRow := make([]interface{}, 0, len(header))
	for _, column := range header {
		headerRow = append(headerRow, column)
	}
	values = append(values, headerRow)
	values = append(values, rows...)

	if err := s.Client.WriteTable(spreadsheetID, tab, values); err != nil {
		return errors.Wrap(err, "erro ao escrever a tabela na planilha")
	}

	return nil
}
