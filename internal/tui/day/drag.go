package day

// RowBox is the on-screen vertical extent of a rendered row.
type RowBox struct {
	Index  int // position in the full list
	Top    int
	Height int
}

// DragAfter returns the list index of the row a dragged row should be
// inserted before when the pointer is at y, or -1 when it belongs at the
// end. Only rows whose midpoint lies below the pointer qualify; of those,
// the nearest one wins.
func DragAfter(boxes []RowBox, dragging int, y int) int {
	after := -1
	closest := 0.0
	found := false

	for _, box := range boxes {
		if box.Index == dragging {
			continue
		}
		offset := float64(y) - float64(box.Top) - float64(box.Height)/2
		if offset < 0 && (!found || offset > closest) {
			closest = offset
			after = box.Index
			found = true
		}
	}
	return after
}

func hitTest(boxes []RowBox, y int) (RowBox, bool) {
	for _, box := range boxes {
		if y >= box.Top && y < box.Top+box.Height {
			return box, true
		}
	}
	return RowBox{}, false
}
