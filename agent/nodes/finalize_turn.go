package plannode

import (
	"fmt"

	contractx "github.com/permitpilot/permitpilot/agent/contract"
)

func FinalizeTurn(in *GraphState) (GraphOutput, error) {
	if in == nil || in.Session == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	out := GraphOutput{
		Turn:  in.Turn,
		Phase: in.Session.Phase,
	}
	if in.Pack != nil {
		out.Summary = in.Pack.Summary
	}
	return out, nil
}
