package secret

import (
	"fmt"
	"strings"
)

type OutcomeKind string

const (
	OutcomeNoOp    OutcomeKind = "NoOp"
	OutcomePatched OutcomeKind = "Patched"
	OutcomeFailed  OutcomeKind = "Failed"
	OutcomeSkipped OutcomeKind = "Skipped"
)

// Outcome is the terminal state of a single reconciliation cycle. It names
// the generated keys but never carries generated values.
type Outcome struct {
	Kind OutcomeKind
	// Keys are the data keys written in this cycle, in generation-spec order.
	Keys []string
	// Reason explains Failed and Skipped outcomes.
	Reason string
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomePatched:
		return fmt.Sprintf("%s(%s)", o.Kind, strings.Join(o.Keys, ", "))
	case OutcomeFailed, OutcomeSkipped:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Reason)
	default:
		return string(o.Kind)
	}
}

func noOp() Outcome {
	return Outcome{Kind: OutcomeNoOp}
}

func patched(keys []string) Outcome {
	return Outcome{Kind: OutcomePatched, Keys: keys}
}

func failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

func skipped(reason string) Outcome {
	return Outcome{Kind: OutcomeSkipped, Reason: reason}
}
