package hand

// Combinations enumerates every k card subset of the given cards.  A seven
// card pool yields the C(7,5)=21 five card combinations evaluated at a
// showdown.
func Combinations(cards []*Card, k int) [][]*Card {
	if k < 0 || k > len(cards) {
		return nil
	}
	combos := [][]*Card{}
	chosen := make([]*Card, k)
	var rec func(start, filled int)
	rec = func(start, filled int) {
		if filled == k {
			combo := make([]*Card, k)
			copy(combo, chosen)
			combos = append(combos, combo)
			return
		}
		for i := start; i <= len(cards)-(k-filled); i++ {
			chosen[filled] = cards[i]
			rec(i+1, filled+1)
		}
	}
	rec(0, 0)
	return combos
}
