package conversation

import "sort"

// Select orders conversations for packing: higher score first, and among
// equal scores the longer combined exchange first. The sort is stable,
// so source order breaks remaining ties. The input slice is not
// modified.
func Select(convs []Conversation) []Conversation {
	ordered := make([]Conversation, len(convs))
	copy(ordered, convs)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].Length > ordered[j].Length
	})

	return ordered
}
