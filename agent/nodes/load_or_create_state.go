package plannode

import (
	"context"
	"errors"
	"fmt"
	"time"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
	statex "github.com/permitpilot/permitpilot/agent/state"
)

func LoadOrCreateState(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
	seedProfile contractx.BusinessProfile,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	st, err := loadOrCreateState(ctx, store, in.SessionID, seedProfile, in.Now)
	if err != nil {
		return nil, err
	}

	in.Session = st
	in.Turn = st.BeginTurn(in.Now)
	return in, nil
}

func loadOrCreateState(
	ctx context.Context,
	store statex.Store,
	sessionID string,
	seedProfile contractx.BusinessProfile,
	now time.Time,
) (*statex.SessionState, error) {
	st, err := store.Load(ctx, sessionID)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, statex.ErrStateNotFound) {
		return nil, err
	}

	return statex.NewSessionState(sessionID, seedProfile, now), nil
}
