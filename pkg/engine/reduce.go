package engine

// Action is a change requested by the user interface.
type Action interface {
	isAction()
}

// ToggleAction flips membership of one id.
type ToggleAction struct{ ID string }

// ClearAction empties the selection.
type ClearAction struct{}

// SelectAction adds every id that is not selected yet, in order.
type SelectAction struct{ IDs []string }

func (ToggleAction) isAction() {}
func (ClearAction) isAction()  {}
func (SelectAction) isAction() {}

// Reduce applies action to sel and returns the next selection.
func Reduce(sel Selection, action Action) Selection {
	switch a := action.(type) {
	case ToggleAction:
		return Toggle(sel, a.ID)
	case ClearAction:
		return Clear()
	case SelectAction:
		next := append(Selection{}, sel...)
		for _, id := range a.IDs {
			if !Contains(next, id) {
				next = append(next, id)
			}
		}
		return next
	default:
		return sel
	}
}
