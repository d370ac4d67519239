package wizard

import "fmt"

// Wizard tracks the position in a fixed, ordered list of steps.
// It is not safe for concurrent use; callers serialize access.
type Wizard struct {
	steps     []Step
	index     int
	direction Direction
}

// New panics if steps is empty or initial is not one of steps.
func New(steps []Step, initial StepID) *Wizard {
	if len(steps) == 0 {
		panic("wizard: no steps")
	}
	idx := indexOf(steps, initial)
	if idx < 0 {
		panic(fmt.Sprintf("wizard: initial step %q is not part of the step list", initial))
	}
	cp := make([]Step, len(steps))
	copy(cp, steps)
	return &Wizard{
		steps:     cp,
		index:     idx,
		direction: DirectionNone,
	}
}

func (w *Wizard) GoNext() {
	if w.IsLast() {
		return
	}
	w.index++
	w.direction = DirectionForward
}

func (w *Wizard) GoBack() {
	if w.IsFirst() {
		return
	}
	w.index--
	w.direction = DirectionBackward
}

// GoToStep ignores targets that are not in the step list.
func (w *Wizard) GoToStep(target StepID) {
	idx := indexOf(w.steps, target)
	if idx < 0 {
		return
	}
	switch {
	case idx > w.index:
		w.direction = DirectionForward
	case idx < w.index:
		w.direction = DirectionBackward
	default:
		w.direction = DirectionNone
	}
	w.index = idx
}

func (w *Wizard) Current() Step        { return w.steps[w.index] }
func (w *Wizard) CurrentIndex() int    { return w.index }
func (w *Wizard) Direction() Direction { return w.direction }
func (w *Wizard) IsFirst() bool        { return w.index == 0 }
func (w *Wizard) IsLast() bool         { return w.index == len(w.steps)-1 }
func (w *Wizard) Len() int             { return len(w.steps) }

func (w *Wizard) Steps() []Step {
	cp := make([]Step, len(w.steps))
	copy(cp, w.steps)
	return cp
}

func (w *Wizard) Progress() []StepProgress {
	out := make([]StepProgress, len(w.steps))
	for i, s := range w.steps {
		status := StatusUpcoming
		switch {
		case i < w.index:
			status = StatusCompleted
		case i == w.index:
			status = StatusCurrent
		}
		out[i] = StepProgress{Step: s, Status: status}
	}
	return out
}

func indexOf(steps []Step, id StepID) int {
	for i, s := range steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
