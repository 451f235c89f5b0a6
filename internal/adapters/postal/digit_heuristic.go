package postal

import (
	"context"

	"shipping-rate-service/internal/domain"
)

// circleStates maps the leading postal-circle digit to a representative
// state. The mapping is coarse on purpose: it only needs to place the
// pincode in roughly the right zone.
var circleStates = map[byte]string{
	'1': "Delhi",
	'2': "Uttar Pradesh",
	'3': "Rajasthan",
	'4': "Maharashtra",
	'5': "Telangana",
	'6': "Tamil Nadu",
	'7': "West Bengal",
	'8': "Bihar",
	'9': "Assam",
}

// DigitHeuristic is the last-resort source. It accepts any pincode
// whose leading digit names a postal circle and leaves city and
// district empty, since it knows nothing more precise than the state.
type DigitHeuristic struct{}

func NewDigitHeuristic() *DigitHeuristic { return &DigitHeuristic{} }

func (h *DigitHeuristic) Resolve(ctx context.Context, pincode string) (*domain.PostalRegion, error) {
	if len(pincode) == 0 {
		return nil, nil
	}

	state, ok := circleStates[pincode[0]]
	if !ok {
		return nil, nil
	}

	return &domain.PostalRegion{
		Pincode: pincode,
		State:   state,
		Zone:    domain.ZoneForState(state),
	}, nil
}
