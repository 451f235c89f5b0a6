package postal

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/obs"
)

type dataGovResponse struct {
	Records []struct {
		StateName    string `json:"statename"`
		DistrictName string `json:"districtname"`
		OfficeName   string `json:"officename"`
	} `json:"records"`
}

// DataGovAPI resolves postal codes against the government open-data
// directory. Slower than PincodeAPI, so it runs as the second source.
type DataGovAPI struct {
	client  *client
	baseURL string
	apiKey  string
}

func NewDataGovAPI(baseURL, apiKey string) *DataGovAPI {
	return &DataGovAPI{
		client:  newClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Resolve returns (nil, nil) when the dataset has no record or the
// call fails; only context cancellation is an error.
func (d *DataGovAPI) Resolve(ctx context.Context, pincode string) (_ *domain.PostalRegion, err error) {
	defer obs.Time(ctx, "postal.datagov_api.Resolve")(&err)

	makeReq := func() (*http.Request, error) {
		req, err := d.client.newRequest(ctx, http.MethodGet, d.baseURL, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("api-key", d.apiKey)
		q.Set("format", "json")
		q.Set("filters[pincode]", pincode)
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := d.client.doWithRetry(ctx, makeReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("datagov lookup failed: pincode=%s err=%v", pincode, err)
		return nil, nil
	}
	defer resp.Body.Close()

	var decoded dataGovResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, nil
	}

	if len(decoded.Records) == 0 {
		return nil, nil
	}

	rec := decoded.Records[0]
	if strings.TrimSpace(rec.StateName) == "" {
		return nil, nil
	}

	city := strings.TrimSpace(rec.DistrictName)
	if city == "" {
		city = strings.TrimSpace(rec.OfficeName)
	}

	return &domain.PostalRegion{
		Pincode:  pincode,
		City:     city,
		State:    strings.TrimSpace(rec.StateName),
		District: strings.TrimSpace(rec.DistrictName),
		Zone:     domain.ZoneForState(rec.StateName),
	}, nil
}
