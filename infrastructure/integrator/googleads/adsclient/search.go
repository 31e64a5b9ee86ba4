package adsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
)

type searchRequest struct {
	Query string `json:"query"`
}

// Search executa uma consulta GAQL via googleAds:searchStream e devolve as
// linhas de todos os blocos da resposta, na ordem em que a API as retornou
func (c *GoogleAdsClient) Search(customerID string, query string) ([]googleadsdomain.GoogleAdsRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.Cfg.GoogleAds.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "customers", customerID, "googleAds:searchStream")

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	// O searchStream devolve um array de blocos, cada um com sua lista de
	// resultados.
	var chunks []googleadsdomain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&chunks); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	var rows []googleadsdomain.GoogleAdsRow
	for _, chunk := range chunks {
		rows = append(rows, chunk.Results...)
	}

	return rows, nil
}

func (c *GoogleAdsClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")

	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}
}

func (c *GoogleAdsClient) handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var apiError googleadsdomain.APIError
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Error.Message != "" {
		return errors.Errorf("requisição falhou com status %s: %s", resp.Status, apiError.Error.Message)
	}

	return errors.Errorf("requisição falhou com status: %s", resp.Status)
}
