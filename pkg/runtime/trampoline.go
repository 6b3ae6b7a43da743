package runtime

// Trampoline is a resumable computation in one of exactly two states:
// complete (carrying a final Value or a terminal error) or pending (carrying
// one deferred step that yields the next trampoline). Driving a trampoline
// iterates steps in a loop, so native stack use stays constant no matter how
// many steps run; a non-terminating computation simply never completes, and
// any bound (step budget, deadline) is the caller's to impose via Step.
type Trampoline struct {
	value Value
	err   error
	step  func() *Trampoline
}

// Complete wraps a finished evaluation result.
func Complete(value Value) *Trampoline {
	return &Trampoline{value: value}
}

// Fail wraps a terminal error. A failed trampoline is complete; the error
// surfaces from Run unchanged.
func Fail(err error) *Trampoline {
	return &Trampoline{err: err}
}

// Pending defers one unit of work. The step runs at most once, when the
// driver reaches it.
func Pending(step func() *Trampoline) *Trampoline {
	return &Trampoline{step: step}
}

// Done reports whether the trampoline has reached a terminal state.
func (t *Trampoline) Done() bool {
	return t.step == nil
}

// Step advances a pending trampoline by exactly one deferred computation and
// returns the successor. Stepping a completed trampoline returns it
// unchanged, so callers can loop on Step with any external bound they need.
func (t *Trampoline) Step() *Trampoline {
	if t.step == nil {
		return t
	}
	return t.step()
}

// Result returns the carried value or error. Only meaningful once Done.
func (t *Trampoline) Result() (Value, error) {
	return t.value, t.err
}

// Run drives the trampoline to completion and returns its result. The loop
// costs one native frame regardless of iteration count. Run never returns
// for a non-terminating computation; use Step or RunMaxSteps to bound it.
func (t *Trampoline) Run() (Value, error) {
	current := t
	for !current.Done() {
		current = current.Step()
	}
	return current.Result()
}

// RunMaxSteps drives the trampoline for at most limit steps. The boolean
// reports whether a terminal state was reached; when false, the returned
// value and error are zero and the computation is simply abandoned.
func (t *Trampoline) RunMaxSteps(limit int) (Value, bool, error) {
	current := t
	for steps := 0; !current.Done(); steps++ {
		if steps >= limit {
			return nil, false, nil
		}
		current = current.Step()
	}
	value, err := current.Result()
	return value, true, err
}
