package plannode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
	extractx "github.com/permitpilot/permitpilot/agent/extract"
	statex "github.com/permitpilot/permitpilot/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Text      string
}

type GraphOutput struct {
	Turn    int
	Phase   statex.Phase
	Summary string
}

type GraphState struct {
	SessionID string
	Text      string
	Now       time.Time

	Session       *statex.SessionState
	Turn          int
	Updates       extractx.Updates
	LocationQuery string
	Location      *contractx.Location

	Pack *contractx.PermitPack
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		Now:       nowFn().UTC(),
	}, nil
}
