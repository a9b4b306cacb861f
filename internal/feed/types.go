package feed

// PropertyRecord represents a single RESO Property resource record as
// returned by the feed. Field names follow the RESO Data Dictionary.
type PropertyRecord struct {
	ListingKey            string   `json:"ListingKey"`
	ListingID             string   `json:"ListingId"`
	UnparsedAddress       string   `json:"UnparsedAddress"`
	City                  string   `json:"City"`
	StateOrProvince       string   `json:"StateOrProvince"`
	PostalCode            string   `json:"PostalCode"`
	ListPrice             float64  `json:"ListPrice"`
	ClosePrice            *float64 `json:"ClosePrice,omitempty"`
	BedroomsTotal         int      `json:"BedroomsTotal"`
	BathroomsTotalDecimal float64  `json:"BathroomsTotalDecimal"`
	BathroomsTotalInteger int      `json:"BathroomsTotalInteger"`
	LivingArea            float64  `json:"LivingArea"`
	LotSizeSquareFeet     *float64 `json:"LotSizeSquareFeet,omitempty"`
	YearBuilt             int      `json:"YearBuilt"`
	Latitude              float64  `json:"Latitude"`
	Longitude             float64  `json:"Longitude"`
	WaterfrontYN          bool     `json:"WaterfrontYN"`
	EntryLevel            int      `json:"EntryLevel"`
	PropertySubType       string   `json:"PropertySubType"`
	StandardStatus        string   `json:"StandardStatus"`
	DaysOnMarket          int      `json:"DaysOnMarket"`
	ListingContractDate   string   `json:"ListingContractDate,omitempty"`
	CloseDate             string   `json:"CloseDate,omitempty"`
	ListingURL            string   `json:"ListingURL,omitempty"`
	PhotoURL              string   `json:"PhotoURL,omitempty"`
	ModificationTimestamp string   `json:"ModificationTimestamp,omitempty"`
}
