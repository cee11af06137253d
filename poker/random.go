package poker

import (
	rand "math/rand/v2"
)

// RandomHand draws two uniformly random cards, redrawing until they differ.
// Each card's rank and suit are drawn independently, so the first card is
// uniform over the deck and the second uniform over the remaining 51.
func RandomHand(rng *rand.Rand) Hand {
	first := randomCard(rng)
	second := randomCard(rng)
	for second == first {
		second = randomCard(rng)
	}
	return Hand{first, second}
}

func randomCard(rng *rand.Rand) Card {
	rank := uint8(rng.IntN(13))
	suit := uint8(rng.IntN(4))
	return NewCard(rank, suit)
}
