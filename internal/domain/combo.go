package domain

// Kind labels the shape of a played set of cards.
type Kind int

const (
	KindInvalid Kind = iota
	KindSingle
	KindPair
	KindTriple
	KindTripleWithSingle
	KindTripleWithPair
	KindStraight
	KindStraightOfPairs
	KindPlane
	KindPlaneWithWings
	KindFourWithTwoSingles
	KindFourWithTwoPairs
	KindBomb
	KindRocket
)

var kindNames = map[Kind]string{
	KindInvalid:            "invalid",
	KindSingle:             "single",
	KindPair:               "pair",
	KindTriple:             "triple",
	KindTripleWithSingle:   "triple_with_single",
	KindTripleWithPair:     "triple_with_pair",
	KindStraight:           "straight",
	KindStraightOfPairs:    "straight_of_pairs",
	KindPlane:              "plane",
	KindPlaneWithWings:     "plane_with_wings",
	KindFourWithTwoSingles: "four_with_two_singles",
	KindFourWithTwoPairs:   "four_with_two_pairs",
	KindBomb:               "bomb",
	KindRocket:             "rocket",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Combination is the canonical classification of a set of cards: its kind,
// the cards sorted ascending by weight, and the key weight used to compare
// two combinations of the same kind.
type Combination struct {
	Kind  Kind   `json:"kind"`
	Cards []Card `json:"cards"`
	Key   int    `json:"key"`
}

// MaxPlaySize caps classification input; no legal shape exceeds a full
// 20-card landlord hand.
const MaxPlaySize = 20

// shape is the precomputed rank analysis a matcher inspects: the sorted
// cards, the per-rank multiplicities, and the ranks grouped by multiplicity
// (each group ascending).
type shape struct {
	sorted  []Card
	size    int
	counts  map[Rank]int
	byCount map[int][]Rank
}

// matcher pairs a kind with its predicate. On a match it returns the key
// weight for same-kind comparison.
type matcher struct {
	kind  Kind
	match func(s shape) (key int, ok bool)
}

// matchers is evaluated top to bottom; the first hit wins. The fixed order
// makes classification shape-exclusive without a best-of-all-shapes search.
var matchers = []matcher{
	{KindRocket, matchRocket},
	{KindBomb, matchBomb},
	{KindSingle, matchSingle},
	{KindPair, matchPair},
	{KindTriple, matchTriple},
	{KindStraight, matchStraight},
	{KindStraightOfPairs, matchStraightOfPairs},
	{KindPlane, matchPlane},
	{KindTripleWithSingle, matchTripleWithSingle},
	{KindTripleWithPair, matchTripleWithPair},
	{KindPlaneWithWings, matchPlaneWithWings},
	{KindFourWithTwoSingles, matchFourWithTwoSingles},
	{KindFourWithTwoPairs, matchFourWithTwoPairs},
}

// Classify analyzes an unordered set of cards and returns its combination.
// Every input maps to exactly one kind, including KindInvalid; Classify
// never panics on any card multiset.
func Classify(cards []Card) Combination {
	if len(cards) == 0 || len(cards) > MaxPlaySize {
		return Combination{Kind: KindInvalid}
	}

	s := analyze(cards)
	for _, m := range matchers {
		if key, ok := m.match(s); ok {
			return Combination{Kind: m.kind, Cards: s.sorted, Key: key}
		}
	}
	return Combination{Kind: KindInvalid, Cards: s.sorted}
}

func analyze(cards []Card) shape {
	sorted := append([]Card{}, cards...)
	SortCards(sorted)

	counts := make(map[Rank]int, len(sorted))
	for _, c := range sorted {
		counts[c.Rank]++
	}

	// Walking the sorted cards keeps every byCount group ascending.
	byCount := make(map[int][]Rank)
	seen := make(map[Rank]bool, len(counts))
	for _, c := range sorted {
		if seen[c.Rank] {
			continue
		}
		seen[c.Rank] = true
		byCount[counts[c.Rank]] = append(byCount[counts[c.Rank]], c.Rank)
	}

	return shape{sorted: sorted, size: len(sorted), counts: counts, byCount: byCount}
}

// isRun reports whether ranks (ascending) form a gapless consecutive run.
// Runs can never include 2 or the jokers.
func isRun(ranks []Rank) bool {
	if len(ranks) == 0 || ranks[len(ranks)-1] >= RankTwo {
		return false
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func matchRocket(s shape) (int, bool) {
	if s.size == 2 && s.counts[RankJokerSmall] == 1 && s.counts[RankJokerBig] == 1 {
		return int(RankJokerBig), true
	}
	return 0, false
}

func matchBomb(s shape) (int, bool) {
	if s.size == 4 && len(s.byCount[4]) == 1 {
		return int(s.byCount[4][0]), true
	}
	return 0, false
}

func matchSingle(s shape) (int, bool) {
	if s.size == 1 {
		return s.sorted[0].Weight(), true
	}
	return 0, false
}

func matchPair(s shape) (int, bool) {
	if s.size == 2 && len(s.byCount[2]) == 1 {
		return int(s.byCount[2][0]), true
	}
	return 0, false
}

func matchTriple(s shape) (int, bool) {
	if s.size == 3 && len(s.byCount[3]) == 1 {
		return int(s.byCount[3][0]), true
	}
	return 0, false
}

func matchStraight(s shape) (int, bool) {
	singles := s.byCount[1]
	if s.size >= 5 && len(singles) == s.size && isRun(singles) {
		return int(singles[0]), true
	}
	return 0, false
}

func matchStraightOfPairs(s shape) (int, bool) {
	pairs := s.byCount[2]
	if s.size >= 6 && s.size%2 == 0 && len(pairs)*2 == s.size && isRun(pairs) {
		return int(pairs[0]), true
	}
	return 0, false
}

func matchPlane(s shape) (int, bool) {
	triples := s.byCount[3]
	if s.size >= 6 && s.size%3 == 0 && len(triples)*3 == s.size && isRun(triples) {
		return int(triples[0]), true
	}
	return 0, false
}

func matchTripleWithSingle(s shape) (int, bool) {
	if s.size == 4 && len(s.byCount[3]) == 1 && len(s.byCount[1]) == 1 {
		return int(s.byCount[3][0]), true
	}
	return 0, false
}

func matchTripleWithPair(s shape) (int, bool) {
	if s.size == 5 && len(s.byCount[3]) == 1 && len(s.byCount[2]) == 1 {
		return int(s.byCount[3][0]), true
	}
	return 0, false
}

// matchPlaneWithWings requires N>=2 consecutive triples plus exactly N
// single or exactly N pair attachments. Attachments may be any ranks, but a
// rank already used as a triple cannot also appear among them (the exact
// count partition enforces that).
func matchPlaneWithWings(s shape) (int, bool) {
	triples := s.byCount[3]
	n := len(triples)
	if n < 2 || !isRun(triples) {
		return 0, false
	}

	switch s.size {
	case 4 * n:
		if len(s.byCount[1]) == n && len(s.byCount[2]) == 0 && len(s.byCount[4]) == 0 {
			return int(triples[0]), true
		}
	case 5 * n:
		if len(s.byCount[2]) == n && len(s.byCount[1]) == 0 && len(s.byCount[4]) == 0 {
			return int(triples[0]), true
		}
	}
	return 0, false
}

func matchFourWithTwoSingles(s shape) (int, bool) {
	if s.size == 6 && len(s.byCount[4]) == 1 && len(s.byCount[1]) == 2 {
		return int(s.byCount[4][0]), true
	}
	return 0, false
}

func matchFourWithTwoPairs(s shape) (int, bool) {
	if s.size == 8 && len(s.byCount[4]) == 1 && len(s.byCount[2]) == 2 {
		return int(s.byCount[4][0]), true
	}
	return 0, false
}
