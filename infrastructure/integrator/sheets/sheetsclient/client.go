package sheetsclient

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vfg2006/ads-report-api/internal/config"
)

// As abas são sempre limpas e reescritas por inteiro, então todas as operações
// trabalham sobre o intervalo A:Z da aba
const tabRange = "%s!A:Z"

type Client interface {
	ClearTab(spreadsheetID string, tab string) error
	WriteTable(spreadsheetID string, tab string, values [][]interface{}) error
}

type SheetsClient struct {
	Cfg     *config.Config
	service *sheets.Service
}

// NewClient autentica com a service account configurada e monta o cliente da
// API de planilhas
func NewClient(cfg *config.Config) (Client, error) {
	ctx := context.Background()

	jsonKey, err := os.ReadFile(cfg.Sheets.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de credenciais: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar as credenciais da service account: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o cliente de planilhas: %w", err)
	}

	return &SheetsClient{
		Cfg:     cfg,
		service: service,
	}, nil
}

// ClearTab remove todos os valores da aba informada
func (c *SheetsClient) ClearTab(spreadsheetID string, tab string) error {
	rangeStr := fmt.Sprintf(tabRange, tab)

	_, err := c.service.Spreadsheets.Values.
		Clear(spreadsheetID, rangeStr, &sheets.ClearValuesRequest{}).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao limpar a aba %s: %w", tab, err)
	}

	return nil
}

// WriteTable escreve os valores a partir da primeira célula da aba
func (c *SheetsClient) WriteTable(spreadsheetID string, tab string, values [][]interface{}) error {
	rangeStr := fmt.Sprintf(tabRange, tab)

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.
		Update(spreadsheetID, rangeStr, valueRange).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("erro ao escrever na aba %s: %w", tab, err)
	}

	return nil
}
