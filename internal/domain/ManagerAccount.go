package domain

// ManagerAccountInfo representa os dados gerais de uma conta administradora (MCC)
type ManagerAccountInfo struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	Currency                 string `json:"currency"`
	TimeZone                 string `json:"time_zone"`
	TestAccount              bool   `json:"test_account"`
	Status                   string `json:"status"`
	Manager                  bool   `json:"manager"`
	AutoTaggingEnabled       bool   `json:"auto_tagging_enabled"`
	TrackingURLTemplate      string `json:"tracking_url_template"`
	FinalURLSuffix           string `json:"final_url_suffix"`
	ConversionTrackingID     int64  `json:"conversion_tracking_id"`
	ConversionTrackingStatus string `json:"conversion_tracking_status"`
}
