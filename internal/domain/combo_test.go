package domain

import (
	"testing"
)

// cardsOf builds a hand from ranks, cycling suits so no duplicate
// (suit, rank) pairs are produced for up to four copies of a rank.
func cardsOf(ranks ...Rank) []Card {
	suits := []Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}
	used := map[Rank]int{}
	cards := make([]Card, 0, len(ranks))
	for _, r := range ranks {
		if r >= RankJokerSmall {
			cards = append(cards, Card{Suit: SuitJoker, Rank: r})
			continue
		}
		cards = append(cards, Card{Suit: suits[used[r]%len(suits)], Rank: r})
		used[r]++
	}
	return cards
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		cards []Card
		kind Kind
		key  int
	}{
		{
			name:  "Single",
			cards: cardsOf(RankSeven),
			kind:  KindSingle,
			key:   7,
		},
		{
			name:  "Pair",
			cards: cardsOf(RankQueen, RankQueen),
			kind:  KindPair,
			key:   12,
		},
		{
			name:  "PairOfTwos",
			cards: cardsOf(RankTwo, RankTwo),
			kind:  KindPair,
			key:   15,
		},
		{
			name:  "Triple",
			cards: cardsOf(RankNine, RankNine, RankNine),
			kind:  KindTriple,
			key:   9,
		},
		{
			name:  "Bomb",
			cards: cardsOf(RankThree, RankThree, RankThree, RankThree),
			kind:  KindBomb,
			key:   3,
		},
		{
			name:  "BombOfTwos",
			cards: cardsOf(RankTwo, RankTwo, RankTwo, RankTwo),
			kind:  KindBomb,
			key:   15,
		},
		{
			name:  "Rocket",
			cards: cardsOf(RankJokerSmall, RankJokerBig),
			kind:  KindRocket,
			key:   17,
		},
		{
			name:  "TwoPlusJokerIsNotAPair",
			cards: cardsOf(RankTwo, RankJokerBig),
			kind:  KindInvalid,
		},
		{
			name:  "TripleWithSingle",
			cards: cardsOf(RankSeven, RankSeven, RankSeven, RankEight),
			kind:  KindTripleWithSingle,
			key:   7,
		},
		{
			name:  "TripleWithPair",
			cards: cardsOf(RankJack, RankJack, RankJack, RankFour, RankFour),
			kind:  KindTripleWithPair,
			key:   11,
		},
		{
			name:  "Straight",
			cards: cardsOf(RankThree, RankFour, RankFive, RankSix, RankSeven),
			kind:  KindStraight,
			key:   3,
		},
		{
			name:  "StraightToAce",
			cards: cardsOf(RankTen, RankJack, RankQueen, RankKing, RankAce),
			kind:  KindStraight,
			key:   10,
		},
		{
			name:  "StraightThroughTwoIsInvalid",
			cards: cardsOf(RankJack, RankQueen, RankKing, RankAce, RankTwo),
			kind:  KindInvalid,
		},
		{
			name:  "FourCardRunIsInvalid",
			cards: cardsOf(RankThree, RankFour, RankFive, RankSix),
			kind:  KindInvalid,
		},
		{
			name:  "GappedRunIsInvalid",
			cards: cardsOf(RankThree, RankFour, RankFive, RankSeven, RankEight),
			kind:  KindInvalid,
		},
		{
			name:  "StraightOfPairs",
			cards: cardsOf(RankFive, RankFive, RankSix, RankSix, RankSeven, RankSeven),
			kind:  KindStraightOfPairs,
			key:   5,
		},
		{
			name:  "StraightOfPairsWithTwoIsInvalid",
			cards: cardsOf(RankAce, RankAce, RankTwo, RankTwo, RankKing, RankKing),
			kind:  KindInvalid,
		},
		{
			name:  "TwoPairsOnlyIsInvalid",
			cards: cardsOf(RankFive, RankFive, RankSix, RankSix),
			kind:  KindInvalid,
		},
		{
			name:  "Plane",
			cards: cardsOf(RankEight, RankEight, RankEight, RankNine, RankNine, RankNine),
			kind:  KindPlane,
			key:   8,
		},
		{
			name:  "PlaneOfThree",
			cards: cardsOf(RankFour, RankFour, RankFour, RankFive, RankFive, RankFive, RankSix, RankSix, RankSix),
			kind:  KindPlane,
			key:   4,
		},
		{
			name:  "NonConsecutiveTriplesAreInvalid",
			cards: cardsOf(RankFour, RankFour, RankFour, RankSix, RankSix, RankSix),
			kind:  KindInvalid,
		},
		{
			name:  "PlaneWithSingleWings",
			cards: cardsOf(RankEight, RankEight, RankEight, RankNine, RankNine, RankNine, RankThree, RankKing),
			kind:  KindPlaneWithWings,
			key:   8,
		},
		{
			name:  "PlaneWithPairWings",
			cards: cardsOf(RankEight, RankEight, RankEight, RankNine, RankNine, RankNine, RankFour, RankFour, RankAce, RankAce),
			kind:  KindPlaneWithWings,
			key:   8,
		},
		{
			name:  "PlaneWithJokerWings",
			cards: cardsOf(RankKing, RankKing, RankKing, RankAce, RankAce, RankAce, RankJokerSmall, RankJokerBig),
			kind:  KindPlaneWithWings,
			key:   13,
		},
		{
			name:  "PlaneWithMixedWingsIsInvalid",
			cards: cardsOf(RankEight, RankEight, RankEight, RankNine, RankNine, RankNine, RankThree, RankFour, RankFour),
			kind:  KindInvalid,
		},
		{
			name:  "FourWithTwoSingles",
			cards: cardsOf(RankTen, RankTen, RankTen, RankTen, RankThree, RankFive),
			kind:  KindFourWithTwoSingles,
			key:   10,
		},
		{
			name:  "FourWithOnePairIsInvalid",
			cards: cardsOf(RankTen, RankTen, RankTen, RankTen, RankThree, RankThree),
			kind:  KindInvalid,
		},
		{
			name:  "FourWithTwoPairs",
			cards: cardsOf(RankTen, RankTen, RankTen, RankTen, RankThree, RankThree, RankSix, RankSix),
			kind:  KindFourWithTwoPairs,
			key:   10,
		},
		{
			name:  "EmptyIsInvalid",
			cards: nil,
			kind:  KindInvalid,
		},
		{
			name:  "ArbitraryJunkIsInvalid",
			cards: cardsOf(RankThree, RankFive, RankNine),
			kind:  KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo := Classify(tt.cards)
			if combo.Kind != tt.kind {
				t.Fatalf("Classify() kind = %v, want %v", combo.Kind, tt.kind)
			}
			if tt.kind != KindInvalid && combo.Key != tt.key {
				t.Errorf("Classify() key = %d, want %d", combo.Key, tt.key)
			}
		})
	}
}

func TestClassifySortsCards(t *testing.T) {
	combo := Classify(cardsOf(RankSeven, RankThree, RankFive, RankFour, RankSix))
	if combo.Kind != KindStraight {
		t.Fatalf("kind = %v, want straight", combo.Kind)
	}
	for i := 1; i < len(combo.Cards); i++ {
		if combo.Cards[i].Weight() < combo.Cards[i-1].Weight() {
			t.Fatalf("cards not sorted ascending: %v", combo.Cards)
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	cards := cardsOf(RankSeven, RankThree, RankFive, RankFour, RankSix)
	first := cards[0]
	Classify(cards)
	if cards[0] != first {
		t.Fatalf("Classify mutated its input: %v", cards)
	}
}
