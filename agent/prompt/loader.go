package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/permitpilot.txt
var permitPilotRaw string

// PermitPilot returns the trimmed system prompt for the planning agent.
// The embed is compile-time, so this is safe to call concurrently.
func PermitPilot() string {
	return strings.TrimSpace(permitPilotRaw)
}
