package fuzzy

// positionWeight scales the earliest match index into the fractional part of
// a score.
const positionWeight = 1000

// score sums, per pattern value, the smallest insertion count found across
// info, then adds the smallest index of those minimal matches divided by
// positionWeight.
//
// When two fields tie on the minimum the first one in field order is kept and
// only its index list counts. Find, by contrast, merges tied anchors.
func score(info []FieldResult) float64 {
	type best struct {
		insertions int
		indexes    []int
	}
	var (
		order []string
		mins  = make(map[string]best)
	)
	for _, fr := range info {
		for _, m := range fr.Patterns {
			cur, seen := mins[m.Value]
			if !seen {
				order = append(order, m.Value)
			}
			if !seen || m.Insertions < cur.insertions {
				mins[m.Value] = best{insertions: m.Insertions, indexes: m.Indexes}
			}
		}
	}

	total := 0
	first := -1
	for _, v := range order {
		b := mins[v]
		total += b.insertions
		for _, i := range b.indexes {
			if first < 0 || i < first {
				first = i
			}
		}
	}
	if first < 0 {
		first = 0
	}
	return float64(total) + float64(first)/positionWeight
}
