package domain

import "sort"

// DeckSize is the full landlord deck: four suits of 3..2 plus both jokers.
const DeckSize = 54

// HandSize is the number of cards dealt to each seat before bidding.
const HandSize = 17

// KittySize is the number of face-down cards awarded to the landlord.
const KittySize = 3

// NewDeck returns the ordered 54-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range []Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs} {
		for r := RankThree; r <= RankTwo; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	deck = append(deck, Card{Suit: SuitJoker, Rank: RankJokerSmall})
	deck = append(deck, Card{Suit: SuitJoker, Rank: RankJokerBig})
	return deck
}

// Deal splits a shuffled deck into three 17-card hands and the 3-card kitty.
// The hands and kitty are copies; the input deck is not retained.
func Deal(deck []Card) (hands [NumSeats][]Card, kitty []Card) {
	for i := 0; i < NumSeats; i++ {
		hands[i] = append([]Card{}, deck[i*HandSize:(i+1)*HandSize]...)
	}
	kitty = append([]Card{}, deck[NumSeats*HandSize:DeckSize]...)
	return hands, kitty
}

// SortCards orders cards ascending by weight, breaking rank ties by suit so
// the result is deterministic for any input order.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank < cards[j].Rank
		}
		return cards[i].Suit < cards[j].Suit
	})
}
