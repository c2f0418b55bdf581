package pack

import (
	"encoding/json"
	"strings"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

// ExtractText flattens the loosely-typed chat-message content union into a
// plain string. Three cases are recognized: a bare string, a list of mixed
// parts (strings or {text: ...} maps), and an object with a text field.
// Anything else yields an empty string so later stages never see the union.
func ExtractText(content any) string {
	switch v := content.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, part := range v {
			switch p := part.(type) {
			case string:
				if p != "" {
					parts = append(parts, p)
				}
			case map[string]any:
				if text, ok := p["text"].(string); ok && text != "" {
					parts = append(parts, text)
				}
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		if text, ok := v["text"].(string); ok {
			return text
		}
	}
	return ""
}

// rawPack mirrors the JSON envelope the reasoning agent is asked to produce.
// Field presence is checked against raw JSON so that a missing array and an
// empty array are distinguishable from a wrong type.
type rawPack struct {
	Summary         json.RawMessage `json:"summary"`
	KeyPermits      json.RawMessage `json:"keyPermits"`
	CostItems       json.RawMessage `json:"costItems"`
	PermitChecklist json.RawMessage `json:"permitChecklist"`
	Timeline        json.RawMessage `json:"timeline"`
	Actions         json.RawMessage `json:"actions"`
	EstimatedCost   json.RawMessage `json:"estimatedCost"`
	TimelineDays    json.RawMessage `json:"timelineDays"`
}

// ParsePack decides whether raw agent text is a conforming permit pack.
// Required shape: summary string; keyPermits, costItems, permitChecklist,
// timeline, actions arrays; estimatedCost and timelineDays numbers. Text
// failing the check is ordinary prose, not an error. When the text as a
// whole is not JSON, the first-{ to last-} slice is retried once, since
// agents tend to wrap JSON in prose.
func ParsePack(raw string) (*contractx.PermitPack, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}
	if pk, ok := parsePack(text); ok {
		return pk, true
	}
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last <= first {
		return nil, false
	}
	return parsePack(text[first : last+1])
}

func parsePack(text string) (*contractx.PermitPack, bool) {
	var shape rawPack
	if err := json.Unmarshal([]byte(text), &shape); err != nil {
		return nil, false
	}
	if !isJSONString(shape.Summary) {
		return nil, false
	}
	for _, field := range []json.RawMessage{
		shape.KeyPermits, shape.CostItems, shape.PermitChecklist, shape.Timeline, shape.Actions,
	} {
		if !isJSONArray(field) {
			return nil, false
		}
	}
	if !isJSONNumber(shape.EstimatedCost) || !isJSONNumber(shape.TimelineDays) {
		return nil, false
	}

	var pk contractx.PermitPack
	if err := json.Unmarshal([]byte(text), &pk); err != nil {
		return nil, false
	}
	return &pk, true
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := firstByte(raw)
	return trimmed == '"'
}

func isJSONArray(raw json.RawMessage) bool {
	return firstByte(raw) == '['
}

func isJSONNumber(raw json.RawMessage) bool {
	b := firstByte(raw)
	return b == '-' || (b >= '0' && b <= '9')
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
