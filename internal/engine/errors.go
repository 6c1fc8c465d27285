package engine

import (
	"fmt"

	"github.com/brainbox/engine/internal/common"
)

// InvalidInput reports that an operation was called with an empty path, an
// unknown neuron type, or a non-positive limit. Per spec, operations
// receiving an InvalidInput return an empty result or no-op; they never
// panic or propagate a hard failure.
type InvalidInput struct {
	Reason string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("brainbox: invalid input: %s", e.Reason)
}

// ParseNeuronType parses a host-supplied type string, returning an
// InvalidInput error for anything other than file/tool/error/semantic.
// This is the one place the InvalidInput("unknown type") case from
// spec.md §7 is surfaced — Record and Recall themselves are typed by
// common.NeuronType and so cannot receive an unknown type directly.
func ParseNeuronType(s string) (common.NeuronType, error) {
	nt, ok := common.ParseNeuronType(s)
	if !ok {
		return common.FileNeuron, &InvalidInput{Reason: fmt.Sprintf("unknown neuron type %q", s)}
	}
	return nt, nil
}
