package plannode

import (
	"fmt"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
	extractx "github.com/permitpilot/permitpilot/agent/extract"
)

func ExtractSlots(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	in.Updates = extractx.FromText(in.Text, in.Session.Profile)
	if query, ok := extractx.LocationQuery(in.Text); ok {
		in.LocationQuery = query
	}
	return in, nil
}
