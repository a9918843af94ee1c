package tinystl

// allocGuard collects undo actions for a multi-step acquisition.
//
// Callers defer rollback and call commit once every resource is linked into
// the owning structure. Rollback after commit is a no-op; rollback before
// commit runs the undo actions in reverse acquisition order. This replaces
// manual unwind code on every error path of construction and growth.
type allocGuard struct {
	undo      []func()
	committed bool
}

func (g *allocGuard) add(f func()) {
	g.undo = append(g.undo, f)
}

func (g *allocGuard) commit() {
	g.committed = true
}

func (g *allocGuard) rollback() {
	if g.committed {
		return
	}
	for i := len(g.undo) - 1; i >= 0; i-- {
		g.undo[i]()
	}
}
