package cross3d

import "fmt"

// InvariantSeverity classifies how serious an InvariantFinding is: a
// tiered severity, not a plain bool, so a caller can choose to log a
// warning and keep going rather than abort construction.
type InvariantSeverity int

const (
	SeverityWarning InvariantSeverity = iota
	SeverityError
)

func (s InvariantSeverity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// InvariantFinding reports one violation of a structural invariant the tree
// is expected to uphold.
type InvariantFinding struct {
	Severity InvariantSeverity
	CellIdx  int
	Message  string
}

func (f InvariantFinding) Error() string {
	return fmt.Sprintf("cell %d: %s: %s", f.CellIdx, f.Severity, f.Message)
}

// CheckInvariants walks the whole tree and reports every violation of four
// structural invariants: child-count consistency (2 or 4 children), depth
// monotonicity (each child one level below its parent), link pairing (each
// link's Reverse is a link back to this cell whose own Reverse is the
// original link), and density monotonicity (a parent's
// minimally_required_density is never less than any child's). It does not
// check the one-level balance between neighbors, volume conservation, or on
// which side of the neighbor the back-link is stored.
func CheckInvariants(t *Tree) []InvariantFinding {
	var findings []InvariantFinding
	if len(t.Cells) == 0 {
		return findings
	}

	for idx, cell := range t.Cells {
		if idx == 0 {
			continue // Sentinel root: only children and depth are meaningful.
		}
		findings = append(findings, checkChildCount(cell)...)
		findings = append(findings, checkDepth(t, idx, cell)...)
		findings = append(findings, checkLinkPairing(t, idx, cell)...)
		findings = append(findings, checkDensityMonotonicity(t, cell)...)
	}

	return findings
}

func checkChildCount(cell *Cell) []InvariantFinding {
	if cell.IsLeaf() {
		return nil
	}
	n := 0
	for _, c := range cell.Children {
		if c >= 0 {
			n++
		}
	}
	if n != 2 && n != 4 {
		return []InvariantFinding{{
			Severity: SeverityError,
			CellIdx:  cell.Index,
			Message:  fmt.Sprintf("subdivided cell has %d children, want 2 or 4", n),
		}}
	}
	return nil
}

func checkDepth(t *Tree, idx int, cell *Cell) []InvariantFinding {
	var findings []InvariantFinding
	for _, childIdx := range cell.Children {
		if childIdx < 0 {
			continue
		}
		child := t.Cells[childIdx]
		if child.Depth != cell.Depth+1 {
			findings = append(findings, InvariantFinding{
				Severity: SeverityError,
				CellIdx:  childIdx,
				Message:  fmt.Sprintf("depth %d is not parent depth %d + 1", child.Depth, cell.Depth),
			})
		}
	}
	_ = idx
	return findings
}

// checkLinkPairing verifies that every Link's Reverse element points back to
// a Link whose own Reverse points at the original element, and that the
// reverse link's ToIndex is this cell's index.
func checkLinkPairing(t *Tree, idx int, cell *Cell) []InvariantFinding {
	var findings []InvariantFinding
	for dir := Direction(0); dir < numberOfSides; dir++ {
		list := cell.AdjacentCells[dir]
		for el := list.Front(); el != nil; el = el.Next() {
			link := el.Value.(*Link)
			if link.Reverse == nil {
				findings = append(findings, InvariantFinding{
					Severity: SeverityError,
					CellIdx:  idx,
					Message:  fmt.Sprintf("link to cell %d on side %s has nil reverse", link.ToIndex, dir),
				})
				continue
			}
			back, ok := link.Reverse.Value.(*Link)
			if !ok {
				findings = append(findings, InvariantFinding{
					Severity: SeverityError,
					CellIdx:  idx,
					Message:  fmt.Sprintf("link to cell %d on side %s has malformed reverse", link.ToIndex, dir),
				})
				continue
			}
			if back.ToIndex != idx {
				findings = append(findings, InvariantFinding{
					Severity: SeverityError,
					CellIdx:  idx,
					Message:  fmt.Sprintf("link to cell %d on side %s pairs with a back-link to cell %d, want %d", link.ToIndex, dir, back.ToIndex, idx),
				})
			}
			if back.Reverse != el {
				findings = append(findings, InvariantFinding{
					Severity: SeverityError,
					CellIdx:  idx,
					Message:  fmt.Sprintf("link to cell %d on side %s is not the reverse of its own back-link", link.ToIndex, dir),
				})
			}
		}
	}
	return findings
}

func checkDensityMonotonicity(t *Tree, cell *Cell) []InvariantFinding {
	if cell.IsLeaf() {
		return nil
	}
	var findings []InvariantFinding
	for _, childIdx := range cell.Children {
		if childIdx < 0 {
			continue
		}
		child := t.Cells[childIdx]
		if child.MinimallyRequiredDensity > cell.MinimallyRequiredDensity+1e-9 {
			findings = append(findings, InvariantFinding{
				Severity: SeverityWarning,
				CellIdx:  cell.Index,
				Message:  fmt.Sprintf("minimally_required_density %.4f is less than child %d's %.4f", cell.MinimallyRequiredDensity, childIdx, child.MinimallyRequiredDensity),
			})
		}
	}
	return findings
}
