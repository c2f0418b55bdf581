package plannode

import (
	"fmt"
	"strings"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// MergeProfile folds the extracted slot updates and the geocoded location
// into the session profile. Extracted slots apply first; a resolved location
// then overrides the geographic fields, since the geocoder is the authority
// on where a named place actually is and which currency it uses.
func MergeProfile(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	in.Session.Profile = in.Updates.Apply(in.Session.Profile)

	if loc := in.Location; loc != nil {
		profile := &in.Session.Profile
		if strings.TrimSpace(loc.City) != "" {
			profile.City = loc.City
		}
		if strings.TrimSpace(loc.State) != "" {
			profile.State = loc.State
		}
		if strings.TrimSpace(loc.Country) != "" {
			profile.Country = loc.Country
		}
		if strings.TrimSpace(loc.CurrencyCode) != "" {
			profile.CurrencyCode = strings.ToUpper(loc.CurrencyCode)
		}
	}

	return in, nil
}
