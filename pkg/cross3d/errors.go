package cross3d

import "fmt"

// ConstructionError reports a failure while building or subdividing the
// tree, distinct from an InvariantFinding: it means the operation could not
// complete at all, not that it completed into a bad state.
type ConstructionError struct {
	CellIdx int
	Op      string
	Reason  string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cross3d: %s on cell %d: %s", e.Op, e.CellIdx, e.Reason)
}
