package domain

import "fmt"

// Suit identifies a card's suit. Suit never affects ordering or legality; it
// exists for display and deck accounting. Both jokers carry SuitJoker.
type Suit string

const (
	SuitSpades   Suit = "S"
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitJoker    Suit = "J"
)

// Rank is a card's face value. The numeric value doubles as the comparison
// weight: 3 is lowest, then 4..10, J, Q, K, A, 2, small joker, big joker.
type Rank int

const (
	RankThree      Rank = 3
	RankFour       Rank = 4
	RankFive       Rank = 5
	RankSix        Rank = 6
	RankSeven      Rank = 7
	RankEight      Rank = 8
	RankNine       Rank = 9
	RankTen        Rank = 10
	RankJack       Rank = 11
	RankQueen      Rank = 12
	RankKing       Rank = 13
	RankAce        Rank = 14
	RankTwo        Rank = 15
	RankJokerSmall Rank = 16
	RankJokerBig   Rank = 17
)

// Card is a single playing card. Cards are value objects; equality is
// (Suit, Rank).
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Weight returns the total-order weight used for every comparison.
func (c Card) Weight() int {
	return int(c.Rank)
}

var rankLabels = map[Rank]string{
	RankThree: "3", RankFour: "4", RankFive: "5", RankSix: "6",
	RankSeven: "7", RankEight: "8", RankNine: "9", RankTen: "10",
	RankJack: "J", RankQueen: "Q", RankKing: "K", RankAce: "A",
	RankTwo: "2", RankJokerSmall: "joker", RankJokerBig: "JOKER",
}

func (c Card) String() string {
	label, ok := rankLabels[c.Rank]
	if !ok {
		return fmt.Sprintf("?%d%s", c.Rank, c.Suit)
	}
	if c.Suit == SuitJoker {
		return label
	}
	return label + string(c.Suit)
}
