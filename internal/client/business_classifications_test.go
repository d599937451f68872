package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

func TestBusinessClassificationsClient_List(t *testing.T) {
	RunListTest(t, "all classifications", "/business-classifications", "business-classifications",
		[]dwolla.BusinessClassification{
			{
				ID:   "9ed3cf58-7d6f-11e3-81a4-5404a6144203",
				Name: "Food retail and service",
				Embedded: &dwolla.BusinessClassificationEmbedded{
					IndustryClassifications: []dwolla.IndustryClassification{
						{ID: "9ed3cf58-7d6f-11e3-8af8-5404a6144203", Name: "Gourmet foods"},
						{ID: "9ed3cf58-7d6f-11e3-8ee9-5404a6144203", Name: "Distilleries"},
					},
				},
			},
			{
				ID:   "9ed38155-7d6f-11e3-83c3-5404a6144203",
				Name: "Entertainment and media",
			},
		},
		func(c *Client) func(context.Context) (*dwolla.BusinessClassificationList, error) {
			return c.BusinessClassifications().List
		})
}

func TestBusinessClassificationsClient_Get(t *testing.T) {
	tests := []TestGetOperation[dwolla.BusinessClassification]{
		{
			Name:         "found",
			ID:           "9ed3cf58-7d6f-11e3-81a4-5404a6144203",
			ExpectedPath: "/business-classifications/9ed3cf58-7d6f-11e3-81a4-5404a6144203",
			StatusCode:   http.StatusOK,
			Response: &dwolla.BusinessClassification{
				ID:   "9ed3cf58-7d6f-11e3-81a4-5404a6144203",
				Name: "Food retail and service",
				Embedded: &dwolla.BusinessClassificationEmbedded{
					IndustryClassifications: []dwolla.IndustryClassification{
						{ID: "9ed3cf58-7d6f-11e3-8af8-5404a6144203", Name: "Gourmet foods"},
					},
				},
			},
		},
		{
			Name:         "not found",
			ID:           "missing",
			ExpectedPath: "/business-classifications/missing",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting business classification",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*dwolla.BusinessClassification, error) {
		return c.BusinessClassifications().Get
	})
}
