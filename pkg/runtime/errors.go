package runtime

import "fmt"

// UnboundVariableError reports a variable lookup that found no binding in
// the current environment chain. Evaluation fails fast; nothing recovers or
// rewrites the error on the way out.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// NotApplicableError reports an application whose function subterm did not
// evaluate to a closure.
type NotApplicableError struct {
	Kind Kind
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("Cannot apply value of kind %s", e.Kind)
}
