package plannode

import (
	"errors"
	"fmt"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// SynthesizePlan runs the local synthesizer and publishes the result as the
// optimistic pack. An incomplete profile is not an error: the session is
// marked generating and the turn continues so the panels can reflect the
// partial profile.
func SynthesizePlan(in *GraphState, synthesizer contractx.Synthesizer) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}
	if synthesizer == nil {
		return nil, fmt.Errorf("%w: synthesizer is required", contractx.ErrValidation)
	}

	pack, err := synthesizer.Synthesize(in.Session.Profile)
	if errors.Is(err, contractx.ErrIncompleteProfile) {
		in.Session.MarkGenerating(in.Now)
		return in, nil
	}
	if err != nil {
		return nil, err
	}

	if err := in.Session.PublishOptimistic(pack, in.Now); err != nil {
		return nil, err
	}
	in.Pack = pack
	return in, nil
}
