package interpreter

import (
	"fmt"

	"github.com/cairnLang/cairn/pkg/types"
)

// builtinDef captures "DEF NAME body... END" from the session queue.
//
// The name is consumed first. Everything up to the first END becomes the
// body, END is dropped, and whatever follows stays queued. Without an END
// the queue is left as it is after the name.
func builtinDef(i *Interpreter) error {
	a, ok := i.Queue.Dequeue()
	if !ok {
		return types.ErrMissingDefinitionName
	}

	body, found := i.Queue.DequeueTo(types.Terminator)

	name, ok := a.(types.Symbol)
	if !ok {
		// A literal can never be invoked, so the body is discarded.
		return fmt.Errorf("%w: %s %s", types.ErrInvalidDefinitionName, a.Type(), a)
	}
	if !found {
		return fmt.Errorf("%w: %s", types.ErrUndefinedTerminator, name)
	}

	i.Define(name, body)
	i.tracef("def = %s %s", name, types.AtomsString(body))
	return nil
}
