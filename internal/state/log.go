package state

import "sync"

// ActionLog holds the committed actions in replay order plus the undone
// actions available for redo, most recently undone first. An action lives in
// exactly one of the two sequences at any time.
type ActionLog struct {
	mu        sync.RWMutex
	committed []Action
	undone    []Action
}

func NewActionLog() *ActionLog {
	return &ActionLog{}
}

// Commit appends a to the committed sequence. Any redo history is discarded:
// new work after an undo invalidates it (linear undo, not a tree).
func (l *ActionLog) Commit(a Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.committed = append(l.committed, a)
	l.undone = nil
}

// Undo moves the most recent committed action to the front of the redo
// sequence. It reports false when there is nothing to undo.
func (l *ActionLog) Undo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.committed) == 0 {
		return false
	}
	last := l.committed[len(l.committed)-1]
	l.committed = l.committed[:len(l.committed)-1]
	l.undone = append([]Action{last}, l.undone...)
	return true
}

// Redo moves the most recently undone action back onto the end of the
// committed sequence. It reports false when there is nothing to redo.
func (l *ActionLog) Redo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.undone) == 0 {
		return false
	}
	first := l.undone[0]
	l.undone = l.undone[1:]
	l.committed = append(l.committed, first)
	return true
}

// ClearLayer drops every action tagged with the given layer from both
// sequences, preserving the relative order of everything else, and returns
// how many actions were removed. Redo history on other layers survives: the
// undone actions are always newer than every committed one, so filtering
// both sequences cannot disturb replay order within a layer.
func (l *ActionLog) ClearLayer(layer int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var removed int
	l.committed, removed = dropLayer(l.committed, layer)
	var n int
	l.undone, n = dropLayer(l.undone, layer)
	return removed + n
}

func dropLayer(actions []Action, layer int) ([]Action, int) {
	kept := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.Layer != layer {
			kept = append(kept, a)
		}
	}
	return kept, len(actions) - len(kept)
}

// Committed returns a copy of the committed sequence in replay order.
func (l *ActionLog) Committed() []Action {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Action, len(l.committed))
	copy(out, l.committed)
	return out
}

// CanUndo reports whether the committed sequence is non-empty.
func (l *ActionLog) CanUndo() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.committed) > 0
}

// CanRedo reports whether any undone actions are available.
func (l *ActionLog) CanRedo() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.undone) > 0
}
