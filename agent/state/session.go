package state

import (
	"errors"
	"fmt"
	"time"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// Phase is the explicit reconciliation state for one operator session. The
// optimistic/authoritative lifecycle is a tagged state, not a set of flags
// inferred from field presence.
type Phase string

const (
	// PhaseIdle: no operator turn has ever been submitted.
	PhaseIdle Phase = "idle"
	// PhaseSynthesizing: a turn is being handled; the optimistic pack is not
	// published yet.
	PhaseSynthesizing Phase = "synthesizing"
	// PhaseGenerating: synthesis preconditions failed and no pack exists yet;
	// consumers show a pending placeholder, not an empty result.
	PhaseGenerating Phase = "generating"
	// PhaseOptimistic: the locally synthesized pack is live.
	PhaseOptimistic Phase = "optimistic"
	// PhaseAuthoritative: a conforming agent pack superseded the optimistic
	// one for the current turn.
	PhaseAuthoritative Phase = "authoritative"
)

var (
	ErrStaleTurn    = errors.New("reply belongs to a superseded turn")
	ErrNilPack      = errors.New("pack is nil")
	ErrInvalidPhase = errors.New("invalid session phase")
)

// SessionState is the persistent reconciliation record for one session: the
// evolving business profile, the currently displayed pack with its source,
// and the index of the operator turn that produced it. It is owned by the
// orchestrator; downstream consumers only ever see Snapshot values.
type SessionState struct {
	SessionID string                    `json:"session_id"`
	Profile   contractx.BusinessProfile `json:"profile"`
	Phase     Phase                     `json:"phase"`
	// Turn counts operator submissions, starting at 1. Zero means no turn
	// was ever submitted.
	Turn       int                   `json:"turn"`
	Pack       *contractx.PermitPack `json:"pack,omitempty"`
	PackSource contractx.PackSource  `json:"pack_source,omitempty"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// Snapshot is the read-only view handed to consumers.
type Snapshot struct {
	SessionID  string
	Phase      Phase
	Turn       int
	Profile    contractx.BusinessProfile
	Pack       *contractx.PermitPack
	PackSource contractx.PackSource
}

func NewSessionState(sessionID string, profile contractx.BusinessProfile, now time.Time) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		Profile:   profile,
		Phase:     PhaseIdle,
		UpdatedAt: now.UTC(),
	}
}

// BeginTurn starts handling a new operator submission and returns its turn
// index. Any previous pack stays visible until the new synthesis replaces it.
func (s *SessionState) BeginTurn(now time.Time) int {
	s.Turn++
	s.Phase = PhaseSynthesizing
	s.touch(now)
	return s.Turn
}

// PublishOptimistic installs a locally synthesized pack for the current turn.
func (s *SessionState) PublishOptimistic(pack *contractx.PermitPack, now time.Time) error {
	if pack == nil {
		return ErrNilPack
	}
	s.Pack = pack
	s.PackSource = contractx.SourceOptimistic
	s.Phase = PhaseOptimistic
	if pack.Profile != nil {
		s.Profile = *pack.Profile
	}
	s.touch(now)
	return nil
}

// MarkGenerating records a synthesis precondition failure. With no prior pack
// the session surfaces the pending placeholder; with one, the previous pack
// stays live under its original source.
func (s *SessionState) MarkGenerating(now time.Time) {
	if s.Pack == nil {
		s.Phase = PhaseGenerating
	} else if s.PackSource == contractx.SourceAuthoritative {
		s.Phase = PhaseAuthoritative
	} else {
		s.Phase = PhaseOptimistic
	}
	s.touch(now)
}

// AdoptAuthoritative supersedes the current pack with an agent-produced one.
// Replies for earlier turns than the current one are rejected so a stale
// reply can never resurrect an old plan; the turn the reply was fired for is
// compared, not its arrival order.
func (s *SessionState) AdoptAuthoritative(pack *contractx.PermitPack, turn int, now time.Time) error {
	if pack == nil {
		return ErrNilPack
	}
	if turn < s.Turn {
		return fmt.Errorf("%w: reply turn=%d current turn=%d", ErrStaleTurn, turn, s.Turn)
	}
	s.Pack = pack
	s.PackSource = contractx.SourceAuthoritative
	s.Phase = PhaseAuthoritative
	if pack.Profile != nil {
		s.Profile = *pack.Profile
	}
	s.touch(now)
	return nil
}

// Snapshot returns a consumer-facing copy. The pack pointer is shared but
// packs are immutable by convention: a new pack always replaces the old one.
func (s *SessionState) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  s.SessionID,
		Phase:      s.Phase,
		Turn:       s.Turn,
		Profile:    s.Profile,
		Pack:       s.Pack,
		PackSource: s.PackSource,
	}
}

func (s *SessionState) Validate() error {
	switch s.Phase {
	case PhaseIdle, PhaseSynthesizing, PhaseGenerating:
		// No pack required.
	case PhaseOptimistic, PhaseAuthoritative:
		if s.Pack == nil {
			return fmt.Errorf("%w: phase=%s without a pack", ErrInvalidPhase, s.Phase)
		}
	default:
		return fmt.Errorf("%w: phase=%q", ErrInvalidPhase, s.Phase)
	}
	if s.Turn < 0 {
		return fmt.Errorf("%w: negative turn=%d", ErrInvalidPhase, s.Turn)
	}
	if s.Phase == PhaseIdle && s.Turn != 0 {
		return fmt.Errorf("%w: idle session with turn=%d", ErrInvalidPhase, s.Turn)
	}
	return nil
}

func (s *SessionState) touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}
