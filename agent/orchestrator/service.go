package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
	nodex "github.com/permitpilot/permitpilot/agent/nodes"
	packx "github.com/permitpilot/permitpilot/agent/pack"
	statex "github.com/permitpilot/permitpilot/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Config struct {
	// SeedProfile primes brand new sessions so the first turn has something
	// to refine instead of an empty form.
	SeedProfile contractx.BusinessProfile
	// AgentTimeout bounds the background agent call. Zero means the default.
	AgentTimeout time.Duration
}

const defaultAgentTimeout = 60 * time.Second

// TurnResult is what a handled operator turn reports back to the caller.
type TurnResult struct {
	Turn    int
	Phase   statex.Phase
	Summary string
}

// Orchestrator drives one operator turn end to end: slot extraction,
// location lookup, optimistic synthesis, panel publication, persistence,
// and the background agent call whose conforming reply supersedes the
// optimistic pack. All state mutation is serialized; readers get snapshots.
type Orchestrator struct {
	store       statex.Store
	synthesizer contractx.Synthesizer
	locator     contractx.Locator
	caller      contractx.AgentCaller
	sink        contractx.PanelSink

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	seedProfile  contractx.BusinessProfile
	agentTimeout time.Duration

	mu  sync.Mutex
	wg  sync.WaitGroup
	now func() time.Time
}

func New(
	store statex.Store,
	synthesizer contractx.Synthesizer,
	locator contractx.Locator,
	caller contractx.AgentCaller,
	sink contractx.PanelSink,
	cfg Config,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if synthesizer == nil {
		return nil, errors.New("synthesizer is required")
	}

	agentTimeout := cfg.AgentTimeout
	if agentTimeout <= 0 {
		agentTimeout = defaultAgentTimeout
	}

	o := &Orchestrator{
		store:        store,
		synthesizer:  synthesizer,
		locator:      locator,
		caller:       caller,
		sink:         sink,
		seedProfile:  cfg.SeedProfile,
		agentTimeout: agentTimeout,
		now:          time.Now,
	}

	graphRunner, err := o.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage processes one operator submission. The optimistic pack is
// published before this returns; the agent reply, when a caller is
// configured, arrives later through HandleAgentReply.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID string, text string) (TurnResult, error) {
	o.mu.Lock()
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	var profile contractx.BusinessProfile
	if err == nil {
		if st, loadErr := o.store.Load(ctx, sessionID); loadErr == nil {
			profile = st.Profile
		}
	}
	o.mu.Unlock()
	if err != nil {
		return TurnResult{}, err
	}

	if o.caller != nil {
		o.wg.Add(1)
		go o.dispatchAgent(sessionID, text, out.Turn, profile)
	}

	return TurnResult{Turn: out.Turn, Phase: out.Phase, Summary: out.Summary}, nil
}

func (o *Orchestrator) dispatchAgent(sessionID string, text string, turn int, profile contractx.BusinessProfile) {
	defer o.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), o.agentTimeout)
	defer cancel()

	raw, err := o.caller.Complete(ctx, text, profile)
	if err != nil {
		if o.sink != nil {
			o.sink.Notify(sessionID, "The planning agent could not be reached. The local plan stays in place.")
		}
		return
	}

	if err := o.HandleAgentReply(ctx, sessionID, turn, raw); err != nil && o.sink != nil {
		o.sink.Notify(sessionID, "The planning agent reply was unusable. The local plan stays in place.")
	}
}

// HandleAgentReply reconciles an agent reply fired for the given turn.
// A reply that does not contain a conforming pack is rejected with
// ErrSchemaViolation. A reply for a superseded turn is dropped silently:
// the operator has already moved on and a newer pack is live.
func (o *Orchestrator) HandleAgentReply(ctx context.Context, sessionID string, turn int, content any) error {
	text := packx.ExtractText(content)
	pack, ok := packx.ParsePack(text)
	if !ok {
		return fmt.Errorf("%w: agent reply does not contain a permit pack", contractx.ErrSchemaViolation)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	st, err := o.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := st.AdoptAuthoritative(pack, turn, o.now()); err != nil {
		if errors.Is(err, statex.ErrStaleTurn) {
			return nil
		}
		return err
	}

	if err := st.Validate(); err != nil {
		return fmt.Errorf("state validation failed: %w", err)
	}
	if err := o.store.Save(ctx, st); err != nil {
		return err
	}

	if o.sink != nil {
		o.sink.UpdateProfile(sessionID, st.Profile)
		o.sink.UpdateChecklist(sessionID, pack.PermitChecklist, pack.CurrencyCode, pack.CurrencyLocale)
		o.sink.UpdateTimeline(sessionID, pack.Timeline)
		o.sink.UpdateActions(sessionID, pack.Actions)
		o.sink.Notify(sessionID, pack.Summary)
	}
	return nil
}

// Snapshot returns the current session view, or ErrStateNotFound when the
// session never submitted a turn.
func (o *Orchestrator) Snapshot(ctx context.Context, sessionID string) (statex.Snapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	st, err := o.store.Load(ctx, sessionID)
	if err != nil {
		return statex.Snapshot{}, err
	}
	return st.Snapshot(), nil
}

// Wait blocks until in-flight agent calls finish. Intended for shutdown and
// tests.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}
