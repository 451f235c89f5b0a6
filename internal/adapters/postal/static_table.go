package postal

import (
	"context"

	"shipping-rate-service/internal/domain"
)

type staticRegion struct {
	city     string
	state    string
	district string
}

// knownPincodes covers the metro head post offices so the big cities
// keep resolving when both external directories are down.
var knownPincodes = map[string]staticRegion{
	"110001": {"New Delhi", "Delhi", "Central Delhi"},
	"400001": {"Mumbai", "Maharashtra", "Mumbai"},
	"560001": {"Bengaluru", "Karnataka", "Bengaluru Urban"},
	"600001": {"Chennai", "Tamil Nadu", "Chennai"},
	"700001": {"Kolkata", "West Bengal", "Kolkata"},
	"500001": {"Hyderabad", "Telangana", "Hyderabad"},
	"411001": {"Pune", "Maharashtra", "Pune"},
	"380001": {"Ahmedabad", "Gujarat", "Ahmedabad"},
	"302001": {"Jaipur", "Rajasthan", "Jaipur"},
	"226001": {"Lucknow", "Uttar Pradesh", "Lucknow"},
	"160017": {"Chandigarh", "Chandigarh", "Chandigarh"},
	"682001": {"Kochi", "Kerala", "Ernakulam"},
	"800001": {"Patna", "Bihar", "Patna"},
	"781001": {"Guwahati", "Assam", "Kamrup Metropolitan"},
	"793001": {"Shillong", "Meghalaya", "East Khasi Hills"},
}

// StaticTable is the offline fallback source backed by a fixed table
// of metro pincodes.
type StaticTable struct{}

func NewStaticTable() *StaticTable { return &StaticTable{} }

func (s *StaticTable) Resolve(ctx context.Context, pincode string) (*domain.PostalRegion, error) {
	r, ok := knownPincodes[pincode]
	if !ok {
		return nil, nil
	}

	return &domain.PostalRegion{
		Pincode:  pincode,
		City:     r.city,
		State:    r.state,
		District: r.district,
		Zone:     domain.ZoneForState(r.state),
	}, nil
}

// KnownRegions returns the full static table, used to pre-seed the
// persistent region store.
func KnownRegions() []domain.PostalRegion {
	out := make([]domain.PostalRegion, 0, len(knownPincodes))
	for pin, r := range knownPincodes {
		out = append(out, domain.PostalRegion{
			Pincode:  pin,
			City:     r.city,
			State:    r.state,
			District: r.district,
			Zone:     domain.ZoneForState(r.state),
		})
	}
	return out
}
