package domain

// CanBeat reports whether candidate may legally be played over table.
// A nil table means free play: any valid combination is allowed. Otherwise
// a rocket beats everything, a bomb beats any non-bomb and weaker bombs,
// and same-kind combinations of identical length compare strictly by key
// weight. Different non-bomb kinds are never comparable.
func CanBeat(candidate Combination, table *Combination) bool {
	if candidate.Kind == KindInvalid {
		return false
	}
	if table == nil || table.Kind == KindInvalid {
		return true
	}

	if candidate.Kind == KindRocket {
		return true
	}
	if table.Kind == KindRocket {
		return false
	}

	if candidate.Kind == KindBomb {
		if table.Kind != KindBomb {
			return true
		}
		return candidate.Key > table.Key
	}
	if table.Kind == KindBomb {
		return false
	}

	if candidate.Kind != table.Kind || len(candidate.Cards) != len(table.Cards) {
		return false
	}
	return candidate.Key > table.Key
}
