package domain

// APIError representa o corpo de erro padrão da API REST do Google Ads
type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
