package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/obs"
)

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
		Country  string `json:"country"`
	} `json:"address"`
}

// NominatimAPI provides free-text address suggestions via an
// OpenStreetMap Nominatim-compatible search endpoint.
type NominatimAPI struct {
	client  *client
	baseURL string
}

func NewNominatimAPI(baseURL string) *NominatimAPI {
	return &NominatimAPI{
		client:  newClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Suggest returns up to limit partial addresses matching the query.
// Unlike the pincode sources, suggestion failures surface as errors:
// there is no fallback chain behind this lookup and the caller shows
// an empty list either way.
func (n *NominatimAPI) Suggest(ctx context.Context, query string, limit int) (_ []domain.ShippingAddress, err error) {
	defer obs.Time(ctx, "postal.nominatim.Suggest")(&err)

	if strings.TrimSpace(query) == "" {
		return []domain.ShippingAddress{}, nil
	}
	if limit < 1 {
		limit = 5
	}

	endpoint := n.baseURL + "/search"

	makeReq := func() (*http.Request, error) {
		req, err := n.client.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", query)
		q.Set("format", "json")
		q.Set("addressdetails", "1")
		q.Set("countrycodes", "in")
		q.Set("limit", strconv.Itoa(limit))
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := n.client.doWithRetry(ctx, makeReq)
	if err != nil {
		return nil, fmt.Errorf("nominatim search %q: %w", query, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}

	out := make([]domain.ShippingAddress, 0, len(decoded))
	for _, r := range decoded {
		city := r.Address.City
		if city == "" {
			city = r.Address.Town
		}
		if city == "" {
			city = r.Address.Village
		}

		out = append(out, domain.ShippingAddress{
			Street:     r.DisplayName,
			City:       city,
			State:      r.Address.State,
			PostalCode: r.Address.Postcode,
			Country:    r.Address.Country,
		})
	}

	return out, nil
}
