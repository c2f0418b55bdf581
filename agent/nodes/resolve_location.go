package plannode

import (
	"context"
	"fmt"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// ResolveLocation enriches the turn with a geocoded location. Lookup
// failures are tolerated: the turn proceeds on whatever the extractor and
// the stored profile already hold.
func ResolveLocation(ctx context.Context, in *GraphState, locator contractx.Locator) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	if locator == nil || in.LocationQuery == "" {
		return in, nil
	}

	loc, err := locator.Resolve(ctx, in.LocationQuery)
	if err != nil {
		return in, nil
	}
	in.Location = loc
	return in, nil
}
