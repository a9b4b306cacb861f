package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborview/mls-comps/internal/feed"
	domain "github.com/harborview/mls-comps/pkg/types"
)

func TestToProperties(t *testing.T) {
	t.Parallel()

	t.Run("full record", func(t *testing.T) {
		t.Parallel()

		closePrice := 495000.0
		records := []feed.PropertyRecord{
			{
				ListingKey:            "key-1",
				ListingID:             "F10500001",
				UnparsedAddress:       "500 Riverside Dr",
				City:                  "Fort Lauderdale",
				StateOrProvince:       "FL",
				PostalCode:            "33301",
				ListPrice:             500000,
				ClosePrice:            &closePrice,
				BedroomsTotal:         3,
				BathroomsTotalDecimal: 2.5,
				LivingArea:            1900,
				YearBuilt:             2004,
				Latitude:              26.12,
				Longitude:             -80.14,
				WaterfrontYN:          true,
				PropertySubType:       "Single Family Residence",
				StandardStatus:        "Closed",
				DaysOnMarket:          42,
				ListingContractDate:   "2026-05-01",
				CloseDate:             "2026-06-12T00:00:00Z",
			},
		}

		properties := feed.ToProperties(records)
		require.Len(t, properties, 1)

		p := properties[0]
		assert.Equal(t, "F10500001", p.MLSNumber)
		assert.Equal(t, "Fort Lauderdale", p.City)
		assert.Equal(t, domain.StatusClosed, p.StandardStatus)
		assert.InDelta(t, 2.5, p.Baths, 0.001)
		assert.True(t, p.Waterfront)
		require.NotNil(t, p.ClosePrice)
		assert.InDelta(t, 495000, *p.ClosePrice, 0.01)
		require.NotNil(t, p.ListDate)
		assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *p.ListDate)
		require.NotNil(t, p.CloseDate)
		assert.Equal(t, 42, p.DaysOnMarket)
	})

	t.Run("listing key fallback", func(t *testing.T) {
		t.Parallel()

		properties := feed.ToProperties([]feed.PropertyRecord{
			{ListingKey: "key-only", StandardStatus: "Active"},
		})
		require.Len(t, properties, 1)
		assert.Equal(t, "key-only", properties[0].MLSNumber)
	})

	t.Run("records without identity are dropped", func(t *testing.T) {
		t.Parallel()

		properties := feed.ToProperties([]feed.PropertyRecord{
			{City: "Nowhere"},
			{ListingID: "F1", StandardStatus: "Active"},
		})
		assert.Len(t, properties, 1)
	})

	t.Run("integer bath fallback", func(t *testing.T) {
		t.Parallel()

		properties := feed.ToProperties([]feed.PropertyRecord{
			{ListingID: "F1", BathroomsTotalInteger: 2},
		})
		require.Len(t, properties, 1)
		assert.InDelta(t, 2.0, properties[0].Baths, 0.001)
	})

	t.Run("status mapping", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			raw  string
			want domain.StandardStatus
		}{
			{"Active", domain.StatusActive},
			{"Active Under Contract", domain.StatusActiveUnderContract},
			{"Pending", domain.StatusPending},
			{"Closed", domain.StatusClosed},
			{"Canceled", domain.StatusCanceled},
			{"Expired", domain.StatusExpired},
			{"Withdrawn", domain.StatusWithdrawn},
			{"SomethingNew", domain.StatusActive},
			{"", domain.StatusActive},
		}

		for _, tt := range tests {
			properties := feed.ToProperties([]feed.PropertyRecord{
				{ListingID: "F1", StandardStatus: tt.raw},
			})
			require.Len(t, properties, 1)
			assert.Equal(t, tt.want, properties[0].StandardStatus, "status %q", tt.raw)
		}
	})

	t.Run("unparseable dates become nil", func(t *testing.T) {
		t.Parallel()

		properties := feed.ToProperties([]feed.PropertyRecord{
			{ListingID: "F1", ListingContractDate: "06/01/2026"},
		})
		require.Len(t, properties, 1)
		assert.Nil(t, properties[0].ListDate)
	})
}
