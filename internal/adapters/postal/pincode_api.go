package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/obs"
)

type pincodeResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
		Block    string `json:"Block"`
	} `json:"PostOffice"`
}

// PincodeAPI resolves postal codes against the public pincode lookup
// service (GET {base}/pincode/{code}). It is the fastest source and
// therefore tried first.
type PincodeAPI struct {
	client  *client
	baseURL string
}

func NewPincodeAPI(baseURL string) *PincodeAPI {
	return &PincodeAPI{
		client:  newClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Resolve returns (nil, nil) when the service has no record for the
// pincode or the call fails; only context cancellation is an error.
func (p *PincodeAPI) Resolve(ctx context.Context, pincode string) (_ *domain.PostalRegion, err error) {
	defer obs.Time(ctx, "postal.pincode_api.Resolve")(&err)

	endpoint := fmt.Sprintf("%s/pincode/%s", p.baseURL, pincode)

	resp, err := p.client.doWithRetry(ctx, func() (*http.Request, error) {
		return p.client.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("pincode api lookup failed: pincode=%s err=%v", pincode, err)
		return nil, nil
	}
	defer resp.Body.Close()

	var decoded pincodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, nil
	}

	if len(decoded) == 0 || !strings.EqualFold(decoded[0].Status, "Success") {
		return nil, nil
	}

	offices := decoded[0].PostOffice
	if len(offices) == 0 {
		return nil, nil
	}

	first := offices[0]
	if strings.TrimSpace(first.State) == "" {
		return nil, nil
	}

	city := strings.TrimSpace(first.District)
	if city == "" {
		city = strings.TrimSpace(first.Name)
	}

	return &domain.PostalRegion{
		Pincode:  pincode,
		City:     city,
		State:    strings.TrimSpace(first.State),
		District: strings.TrimSpace(first.District),
		Zone:     domain.ZoneForState(first.State),
	}, nil
}
