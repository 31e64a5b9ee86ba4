package domain

// Tipos espelhando o payload JSON do método googleAds:searchStream da API REST
// do Google Ads. Campos int64 chegam como strings no JSON, por isso a tag
// ",string"

type SearchResponse struct {
	Results   []GoogleAdsRow `json:"results"`
	FieldMask string         `json:"fieldMask"`
}

type GoogleAdsRow struct {
	Customer         *Customer         `json:"customer,omitempty"`
	Campaign         *Campaign         `json:"campaign,omitempty"`
	AdGroup          *AdGroup          `json:"adGroup,omitempty"`
	AdGroupAd        *AdGroupAd        `json:"adGroupAd,omitempty"`
	AdGroupCriterion *AdGroupCriterion `json:"adGroupCriterion,omitempty"`
	Metrics          *Metrics          `json:"metrics,omitempty"`
	Segments         *Segments         `json:"segments,omitempty"`
}

type Customer struct {
	ID                        int64                      `json:"id,string"`
	DescriptiveName           string                     `json:"descriptiveName"`
	CurrencyCode              string                     `json:"currencyCode"`
	TimeZone                  string                     `json:"timeZone"`
	TestAccount               bool                       `json:"testAccount"`
	Manager                   bool                       `json:"manager"`
	Status                    string                     `json:"status"`
	AutoTaggingEnabled        bool                       `json:"autoTaggingEnabled"`
	TrackingURLTemplate       string                     `json:"trackingUrlTemplate"`
	FinalURLSuffix            string                     `json:"finalUrlSuffix"`
	ConversionTrackingSetting *ConversionTrackingSetting `json:"conversionTrackingSetting,omitempty"`
}

type ConversionTrackingSetting struct {
	ConversionTrackingID     int64  `json:"conversionTrackingId,string"`
	ConversionTrackingStatus string `json:"conversionTrackingStatus"`
}

type Campaign struct {
	ID     int64  `json:"id,string"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AdGroup struct {
	Name string `json:"name"`
}

type AdGroupAd struct {
	Ad *Ad `json:"ad,omitempty"`
}

type Ad struct {
	Name               string              `json:"name"`
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsiveSearchAd,omitempty"`
}

type ResponsiveSearchAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type AdGroupCriterion struct {
	Keyword *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type Metrics struct {
	Impressions                     int64   `json:"impressions,string"`
	Clicks                          int64   `json:"clicks,string"`
	CostMicros                      int64   `json:"costMicros,string"`
	Conversions                     float64 `json:"conversions"`
	Ctr                             float64 `json:"ctr"`
	AverageCpc                      float64 `json:"averageCpc"`
	CostPerConversion               float64 `json:"costPerConversion"`
	ConversionsFromInteractionsRate float64 `json:"conversionsFromInteractionsRate"`
}

type Segments struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
	Hour      int    `json:"hour"`
}
