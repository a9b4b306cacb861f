package feed

import (
	"time"

	domain "github.com/harborview/mls-comps/pkg/types"
)

// statusMap translates RESO StandardStatus display values into the
// canonical lowercase forms used throughout the system.
var statusMap = map[string]domain.StandardStatus{
	"Active":                domain.StatusActive,
	"Active Under Contract": domain.StatusActiveUnderContract,
	"Pending":               domain.StatusPending,
	"Closed":                domain.StatusClosed,
	"Canceled":              domain.StatusCanceled,
	"Expired":               domain.StatusExpired,
	"Withdrawn":             domain.StatusWithdrawn,
}

// ToProperties converts feed records into domain properties. Records
// without a listing key are dropped.
func ToProperties(records []PropertyRecord) []domain.Property {
	properties := make([]domain.Property, 0, len(records))
	for i := range records {
		if records[i].ListingKey == "" && records[i].ListingID == "" {
			continue
		}
		properties = append(properties, toProperty(&records[i]))
	}
	return properties
}

func toProperty(r *PropertyRecord) domain.Property {
	p := domain.Property{
		MLSNumber:       mlsNumber(r),
		ItemURL:         r.ListingURL,
		PhotoURL:        r.PhotoURL,
		AddressFull:     r.UnparsedAddress,
		City:            r.City,
		State:           r.StateOrProvince,
		PostalCode:      r.PostalCode,
		ListPrice:       r.ListPrice,
		ClosePrice:      r.ClosePrice,
		Beds:            r.BedroomsTotal,
		Baths:           baths(r),
		LivingArea:      r.LivingArea,
		LotSize:         r.LotSizeSquareFeet,
		YearBuilt:       r.YearBuilt,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		Waterfront:      r.WaterfrontYN,
		EntryLevel:      r.EntryLevel,
		PropertySubType: r.PropertySubType,
		StandardStatus:  parseStatus(r.StandardStatus),
		DaysOnMarket:    r.DaysOnMarket,
		ListDate:        parseDate(r.ListingContractDate),
		CloseDate:       parseDate(r.CloseDate),
	}
	return p
}

// mlsNumber prefers the human-facing ListingId, falling back to the
// system ListingKey.
func mlsNumber(r *PropertyRecord) string {
	if r.ListingID != "" {
		return r.ListingID
	}
	return r.ListingKey
}

// baths prefers the decimal bathroom count; many feeds only populate
// the integer field.
func baths(r *PropertyRecord) float64 {
	if r.BathroomsTotalDecimal > 0 {
		return r.BathroomsTotalDecimal
	}
	return float64(r.BathroomsTotalInteger)
}

func parseStatus(s string) domain.StandardStatus {
	if mapped, ok := statusMap[s]; ok {
		return mapped
	}
	return domain.StatusActive
}

// parseDate accepts the date-only and RFC3339 timestamp forms feeds
// use interchangeably.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
