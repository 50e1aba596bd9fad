package domain

import "testing"

func TestCanBeat(t *testing.T) {
	tests := []struct {
		name      string
		candidate []Card
		table     []Card // nil means free play
		want      bool
	}{
		{
			name:      "FreePlayAcceptsAnyValidShape",
			candidate: cardsOf(RankThree),
			table:     nil,
			want:      true,
		},
		{
			name:      "FreePlayRejectsInvalidShape",
			candidate: cardsOf(RankThree, RankFive),
			table:     nil,
			want:      false,
		},
		{
			name:      "HigherSingleBeatsLowerSingle",
			candidate: cardsOf(RankAce),
			table:     cardsOf(RankKing),
			want:      true,
		},
		{
			name:      "EqualKeyNeverBeats",
			candidate: cardsOf(RankKing),
			table:     cardsOf(RankKing),
			want:      false,
		},
		{
			name:      "LowerSingleLoses",
			candidate: cardsOf(RankFour),
			table:     cardsOf(RankTwo),
			want:      false,
		},
		{
			name:      "PairCannotBeatSingle",
			candidate: cardsOf(RankAce, RankAce),
			table:     cardsOf(RankThree),
			want:      false,
		},
		{
			name:      "BombBeatsAnyNonBomb",
			candidate: cardsOf(RankThree, RankThree, RankThree, RankThree),
			table:     cardsOf(RankAce, RankAce, RankAce, RankTwo),
			want:      true,
		},
		{
			name:      "BombBeatsStraightOfPairs",
			candidate: cardsOf(RankFour, RankFour, RankFour, RankFour),
			table:     cardsOf(RankJack, RankJack, RankQueen, RankQueen, RankKing, RankKing),
			want:      true,
		},
		{
			name:      "HigherBombBeatsLowerBomb",
			candidate: cardsOf(RankNine, RankNine, RankNine, RankNine),
			table:     cardsOf(RankFive, RankFive, RankFive, RankFive),
			want:      true,
		},
		{
			name:      "LowerBombLosesToHigherBomb",
			candidate: cardsOf(RankFive, RankFive, RankFive, RankFive),
			table:     cardsOf(RankNine, RankNine, RankNine, RankNine),
			want:      false,
		},
		{
			name:      "RocketBeatsBomb",
			candidate: cardsOf(RankJokerSmall, RankJokerBig),
			table:     cardsOf(RankTwo, RankTwo, RankTwo, RankTwo),
			want:      true,
		},
		{
			name:      "BombLosesToRocket",
			candidate: cardsOf(RankTwo, RankTwo, RankTwo, RankTwo),
			table:     cardsOf(RankJokerSmall, RankJokerBig),
			want:      false,
		},
		{
			name:      "HigherStraightBeatsLowerStraightOfSameLength",
			candidate: cardsOf(RankFour, RankFive, RankSix, RankSeven, RankEight),
			table:     cardsOf(RankThree, RankFour, RankFive, RankSix, RankSeven),
			want:      true,
		},
		{
			name:      "LongerStraightCannotBeatShorterStraight",
			candidate: cardsOf(RankFour, RankFive, RankSix, RankSeven, RankEight, RankNine),
			table:     cardsOf(RankThree, RankFour, RankFive, RankSix, RankSeven),
			want:      false,
		},
		{
			name:      "StraightNeverComparableToStraightOfPairs",
			candidate: cardsOf(RankFour, RankFour, RankFive, RankFive, RankSix, RankSix),
			table:     cardsOf(RankThree, RankFour, RankFive, RankSix, RankSeven),
			want:      false,
		},
		{
			name:      "TripleWithSingleComparesByTripleRank",
			candidate: cardsOf(RankNine, RankNine, RankNine, RankThree),
			table:     cardsOf(RankSeven, RankSeven, RankSeven, RankAce),
			want:      true,
		},
		{
			name:      "InvalidCandidateNeverBeats",
			candidate: cardsOf(RankThree, RankNine),
			table:     cardsOf(RankThree),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := Classify(tt.candidate)
			var table *Combination
			if tt.table != nil {
				c := Classify(tt.table)
				table = &c
			}
			if got := CanBeat(candidate, table); got != tt.want {
				t.Errorf("CanBeat() = %v, want %v", got, tt.want)
			}
		})
	}
}
