package notes

// IndexOf returns the position of the note with the given id, or -1.
func IndexOf(list []Note, id string) int {
	for i, n := range list {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Remove returns a copy of list without the note at i.
func Remove(list []Note, i int) []Note {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]Note, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// MoveBefore returns a copy of list with the note at from reinserted
// immediately before the note currently at before. A before of -1 moves
// the note to the end.
func MoveBefore(list []Note, from, before int) []Note {
	if from < 0 || from >= len(list) || before == from {
		return list
	}
	moving := list[from]
	rest := Remove(list, from)

	if before < 0 || before >= len(list) {
		return append(rest, moving)
	}
	if before > from {
		before--
	}
	out := make([]Note, 0, len(list))
	out = append(out, rest[:before]...)
	out = append(out, moving)
	return append(out, rest[before:]...)
}

// Move returns a copy of list with the note at from placed at index to.
func Move(list []Note, from, to int) []Note {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return list
	}
	moving := list[from]
	rest := Remove(list, from)
	out := make([]Note, 0, len(list))
	out = append(out, rest[:to]...)
	out = append(out, moving)
	return append(out, rest[to:]...)
}
