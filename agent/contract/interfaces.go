package contract

import "context"

// Synthesizer derives a permit pack locally from a business profile.
type Synthesizer interface {
	Synthesize(profile BusinessProfile) (*PermitPack, error)
}

// Locator resolves a free-text location query through the external geocoding
// service. Callers treat any error as "keep existing profile fields".
type Locator interface {
	Resolve(ctx context.Context, query string) (*Location, error)
}

// AgentCaller sends one prompt to the external reasoning agent and returns
// the raw assistant text. The caller never interprets the reply.
type AgentCaller interface {
	Complete(ctx context.Context, userText string, profile BusinessProfile) (string, error)
}

// PanelSink receives the four named slices of a pack whenever a new pack is
// published, plus operator-visible notices for agent call failures.
type PanelSink interface {
	UpdateProfile(sessionID string, profile BusinessProfile)
	UpdateChecklist(sessionID string, items []ChecklistItem, currencyCode, currencyLocale string)
	UpdateTimeline(sessionID string, milestones []Milestone)
	UpdateActions(sessionID string, actions []Action)
	Notify(sessionID string, message string)
}
