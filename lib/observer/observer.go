// Package observer keeps this codebase's observer pattern for cell
// events, repurposed as a pure diagnostics channel for the solver.
// Nothing here may drive solving logic: the solver's own snapshot and
// restore machinery is the sole source of truth, so attaching or
// removing observers must never change a solve outcome.
package observer

// Observer receives diagnostic notifications about a single Solve run.
type Observer interface {
	// OnPlace is called whenever the solver places a digit, whether
	// the placement is a given, a forced single, or a branch guess.
	OnPlace(row, col, value int)

	// OnClear is called whenever the solver backtracks out of a
	// placement.
	OnClear(row, col int)

	// OnContradiction is called whenever a branch dies, with a short
	// human-readable reason.
	OnContradiction(reason string)
}

// Notifier fans events out to any number of registered Observers.
type Notifier struct {
	observers []Observer
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Add registers an observer. Nil observers are ignored.
func (n *Notifier) Add(o Observer) {
	if o == nil {
		return
	}
	n.observers = append(n.observers, o)
}

// NotifyPlace fans out a placement event.
func (n *Notifier) NotifyPlace(row, col, value int) {
	for _, o := range n.observers {
		o.OnPlace(row, col, value)
	}
}

// NotifyClear fans out a backtrack event.
func (n *Notifier) NotifyClear(row, col int) {
	for _, o := range n.observers {
		o.OnClear(row, col)
	}
}

// NotifyContradiction fans out a contradiction event.
func (n *Notifier) NotifyContradiction(reason string) {
	for _, o := range n.observers {
		o.OnContradiction(reason)
	}
}

// HasObservers reports whether any observer is registered.
func (n *Notifier) HasObservers() bool {
	return len(n.observers) > 0
}
