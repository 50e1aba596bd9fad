package domain

// HandContains reports whether every card in cards is present in hand,
// counting duplicates as a multiset.
func HandContains(hand []Card, cards []Card) bool {
	if len(cards) == 0 || len(cards) > len(hand) {
		return false
	}

	held := make(map[Card]int, len(hand))
	for _, card := range hand {
		held[card]++
	}
	for _, card := range cards {
		if held[card] == 0 {
			return false
		}
		held[card]--
	}
	return true
}

// RemoveCards removes the specified cards from a hand and returns the
// updated hand. Each card is removed at most once per occurrence.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// LowestCard returns the lowest-weight card in a non-empty hand, breaking
// weight ties by suit for determinism.
func LowestCard(hand []Card) Card {
	low := hand[0]
	for _, c := range hand[1:] {
		if c.Rank < low.Rank || (c.Rank == low.Rank && c.Suit < low.Suit) {
			low = c
		}
	}
	return low
}

// NextSeat returns the seat index acting after seat.
func NextSeat(seat int) int {
	return (seat + 1) % NumSeats
}
