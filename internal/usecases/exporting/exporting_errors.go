package exporting

import "fmt"

// SourceFetchError indica falha ao buscar uma categoria de métricas na origem
type SourceFetchError struct {
	Category   string
	CustomerID string
	Err        error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("erro ao buscar métricas de %s da conta %s: %v", e.Category, e.CustomerID, e.Err)
}

func (e *SourceFetchError) Unwrap() error {
	return e.Err
}

// SinkDeliveryError indica falha ao limpar ou escrever uma aba da planilha de
// destino
type SinkDeliveryError struct {
	SpreadsheetID string
	Tab           string
	Err           error
}

func (e *SinkDeliveryError) Error() string {
	return fmt.Sprintf("erro ao entregar a aba %s da planilha %s: %v", e.Tab, e.SpreadsheetID, e.Err)
}

func (e *SinkDeliveryError) Unwrap() error {
	return e.Err
}
