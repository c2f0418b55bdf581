package plannode

import (
	"fmt"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
	statex "github.com/permitpilot/permitpilot/agent/state"
)

// PublishPanels pushes the turn's outcome to the live panels: the merged
// profile always, and the checklist, timeline, and next actions whenever a
// pack was published this turn.
func PublishPanels(in *GraphState, sink contractx.PanelSink) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}
	if sink == nil {
		return in, nil
	}

	sink.UpdateProfile(in.SessionID, in.Session.Profile)

	if in.Pack != nil {
		sink.UpdateChecklist(in.SessionID, in.Pack.PermitChecklist, in.Pack.CurrencyCode, in.Pack.CurrencyLocale)
		sink.UpdateTimeline(in.SessionID, in.Pack.Timeline)
		sink.UpdateActions(in.SessionID, in.Pack.Actions)
	} else if in.Session.Phase == statex.PhaseGenerating {
		sink.Notify(in.SessionID, "Still missing the city or business type. Add them and the permit plan will follow.")
	}

	return in, nil
}
