package adsclient

import (
	"net/http"
	"time"

	googleadsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
)

type Client interface {
	Search(customerID string, query string) ([]googleadsdomain.GoogleAdsRow, error)
	ListAccessibleCustomers() ([]string, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}
