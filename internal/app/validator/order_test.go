package validator

import (
	"strings"
	"testing"

	"github.com/golang-module/carbon/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/model"
)

func validCreateRequest() model.CreateOrderRequest {
	return model.CreateOrderRequest{
		RequesterName: "Ana Souza",
		Destination:   "Lisbon",
		DepartureDate: carbon.Now().AddDays(10).ToDateString(),
		ReturnDate:    carbon.Now().AddDays(20).ToDateString(),
	}
}

func TestValidateCreateOrderRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *model.CreateOrderRequest)
		badKeys []string
	}{
		{
			name:   "valid request",
			mutate: func(r *model.CreateOrderRequest) {},
		},
		{
			name: "valid request with price",
			mutate: func(r *model.CreateOrderRequest) {
				price := 1500.50
				r.Price = &price
			},
		},
		{
			name: "empty requester name",
			mutate: func(r *model.CreateOrderRequest) {
				r.RequesterName = "   "
			},
			badKeys: []string{"requester_name"},
		},
		{
			name: "requester name too long",
			mutate: func(r *model.CreateOrderRequest) {
				r.RequesterName = strings.Repeat("a", 256)
			},
			badKeys: []string{"requester_name"},
		},
		{
			name: "empty destination",
			mutate: func(r *model.CreateOrderRequest) {
				r.Destination = ""
			},
			badKeys: []string{"destination"},
		},
		{
			name: "malformed departure date",
			mutate: func(r *model.CreateOrderRequest) {
				r.DepartureDate = "10-03-2027"
			},
			badKeys: []string{"departure_date"},
		},
		{
			name: "departure date today",
			mutate: func(r *model.CreateOrderRequest) {
				r.DepartureDate = carbon.Now().ToDateString()
			},
			badKeys: []string{"departure_date"},
		},
		{
			name: "departure date in the past",
			mutate: func(r *model.CreateOrderRequest) {
				r.DepartureDate = "2020-01-01"
			},
			badKeys: []string{"departure_date"},
		},
		{
			name: "return date equals departure date",
			mutate: func(r *model.CreateOrderRequest) {
				r.ReturnDate = r.DepartureDate
			},
			badKeys: []string{"return_date"},
		},
		{
			name: "return date before departure date",
			mutate: func(r *model.CreateOrderRequest) {
				r.ReturnDate = carbon.Now().AddDays(5).ToDateString()
			},
			badKeys: []string{"return_date"},
		},
		{
			name: "negative price",
			mutate: func(r *model.CreateOrderRequest) {
				price := -10.0
				r.Price = &price
			},
			badKeys: []string{"price"},
		},
		{
			name: "missing dates",
			mutate: func(r *model.CreateOrderRequest) {
				r.DepartureDate = ""
				r.ReturnDate = ""
			},
			badKeys: []string{"departure_date", "return_date"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := validCreateRequest()
			test.mutate(&request)

			fields := ValidateCreateOrderRequest(request)

			assert.Len(t, fields, len(test.badKeys))
			for _, key := range test.badKeys {
				assert.Contains(t, fields, key)
			}
		})
	}
}

func TestValidateListOrdersRequest(t *testing.T) {
	t.Run("empty request gives empty filter", func(t *testing.T) {
		filter, fields := ValidateListOrdersRequest(model.ListOrdersRequest{})

		require.Empty(t, fields)
		assert.Equal(t, entity.OrderFilter{}, filter)
	})

	t.Run("full filter", func(t *testing.T) {
		filter, fields := ValidateListOrdersRequest(model.ListOrdersRequest{
			Status:      "approved",
			Destination: " Lisbon ",
			StartDate:   "2027-03-01",
			EndDate:     "2027-03-31",
		})

		require.Empty(t, fields)
		assert.Equal(t, entity.StatusApprovedOrder, filter.Status)
		assert.Equal(t, "Lisbon", filter.Destination)
		assert.Equal(t, "2027-03-01", carbon.CreateFromStdTime(filter.StartDate).ToDateString())
		assert.Equal(t, "2027-03-31", carbon.CreateFromStdTime(filter.EndDate).ToDateString())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, fields := ValidateListOrdersRequest(model.ListOrdersRequest{Status: "rejected"})

		assert.Contains(t, fields, "status")
	})

	t.Run("malformed dates", func(t *testing.T) {
		_, fields := ValidateListOrdersRequest(model.ListOrdersRequest{
			StartDate: "01-03-2027",
			EndDate:   "march",
		})

		assert.Contains(t, fields, "start_date")
		assert.Contains(t, fields, "end_date")
	})

	t.Run("end date before start date", func(t *testing.T) {
		_, fields := ValidateListOrdersRequest(model.ListOrdersRequest{
			StartDate: "2027-03-31",
			EndDate:   "2027-03-01",
		})

		assert.Contains(t, fields, "end_date")
	})
}
