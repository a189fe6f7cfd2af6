package hand

import (
	"errors"
	"sort"
)

// ErrMalformedHand errors occur when a hand does not contain exactly five
// distinct cards.
var ErrMalformedHand = errors.New("hand: hand must contain exactly five distinct cards")

// A Ranking is one of the ten possible hand rankings that a five card hand
// may have.  Rankings are comparable; a higher value beats a lower one.
type Ranking int

const (
	// HighCard represents a hand composed of no pairs, straights, or flushes.
	// Ex: A♠ K♠ Q♦ J♣ 9♥
	HighCard Ranking = iota + 1

	// Pair represents a hand composed of a single pair.
	// Ex: A♠ A♣ K♣ J♦ 7♥
	Pair

	// TwoPair represents a hand composed of two pairs.
	// Ex: A♠ A♣ J♣ J♦ 7♥
	TwoPair

	// ThreeOfAKind represents a hand composed of three of the same rank.
	// Ex: A♠ A♣ A♦ J♦ 7♥
	ThreeOfAKind

	// Straight represents a hand composed of five cards of consecutive rank.
	// Ex: A♠ K♣ Q♦ J♦ T♥
	Straight

	// Flush represents a hand composed of five cards of the same suit.
	// Ex: A♠ K♠ Q♠ J♠ 9♠
	Flush

	// FullHouse represents a hand composed of three of one rank and two of
	// another.  Ex: A♠ A♣ A♦ J♦ J♥
	FullHouse

	// FourOfAKind represents a hand composed of four cards of the same rank.
	// Ex: A♠ A♣ A♦ A♥ J♥
	FourOfAKind

	// StraightFlush represents a hand composed of five cards of consecutive
	// rank and the same suit.  Ex: K♠ Q♠ J♠ T♠ 9♠
	StraightFlush

	// RoyalFlush represents an ace high straight flush.
	// Ex: A♠ K♠ Q♠ J♠ T♠
	RoyalFlush
)

var rankingNames = map[Ranking]string{
	HighCard:      "high card",
	Pair:          "pair",
	TwoPair:       "two pair",
	ThreeOfAKind:  "three of a kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	FourOfAKind:   "four of a kind",
	StraightFlush: "straight flush",
	RoyalFlush:    "royal flush",
}

// String returns the name of the ranking such as "full house".
func (r Ranking) String() string {
	return rankingNames[r]
}

// Classify returns the single ranking of a five card hand.  Exactly one
// ranking holds for any valid hand; the precedence rules (a straight flush
// is not also a flush, a royal flush is not also a straight flush) are
// resolved here rather than by independent predicates.  Classify fails with
// ErrMalformedHand unless given exactly five distinct cards.
func Classify(cards []*Card) (Ranking, error) {
	if err := validateHand(cards); err != nil {
		return 0, err
	}
	return classify(cards), nil
}

// validateHand checks that the slice holds exactly five distinct cards.
func validateHand(cards []*Card) error {
	if len(cards) != 5 {
		return ErrMalformedHand
	}
	seen := map[Card]bool{}
	for _, c := range cards {
		if c == nil || seen[*c] {
			return ErrMalformedHand
		}
		seen[*c] = true
	}
	return nil
}

// classify assumes a validated five card hand.  Categories are tested from
// strongest to weakest so the first match is the hand's only ranking.
func classify(cards []*Card) Ranking {
	suited := oneSuit(cards)
	high := isHighAceStraight(cards)
	low := isLowAceStraight(cards)
	pairs, trips, quads := rankShape(cards)

	switch {
	case suited && high && minNumber(cards) >= 10:
		return RoyalFlush
	case suited && (high || low):
		return StraightFlush
	case quads == 1:
		return FourOfAKind
	case trips == 1 && pairs == 1:
		return FullHouse
	case suited:
		return Flush
	case high || low:
		return Straight
	case trips == 1:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return Pair
	}
	return HighCard
}

// oneSuit returns true if all five cards share a suit.
func oneSuit(cards []*Card) bool {
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			return false
		}
	}
	return true
}

// isHighAceStraight returns true if the ranks, valued ace high, are
// consecutive.
func isHighAceStraight(cards []*Card) bool {
	return consecutive(numbers(cards))
}

// isLowAceStraight returns true if the ranks, valued ace low, are
// consecutive.  This admits the five high straight A-2-3-4-5.
func isLowAceStraight(cards []*Card) bool {
	nums := make([]int, len(cards))
	for i, c := range cards {
		nums[i] = c.Rank().aceLowNumber()
	}
	sort.Ints(nums)
	return consecutive(nums)
}

func consecutive(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] != 1 {
			return false
		}
	}
	return true
}

// numbers returns the ace high rank values of the cards in ascending order.
func numbers(cards []*Card) []int {
	nums := make([]int, len(cards))
	for i, c := range cards {
		nums[i], _ = c.Rank().Number()
	}
	sort.Ints(nums)
	return nums
}

func minNumber(cards []*Card) int {
	return numbers(cards)[0]
}

// rankShape counts how many ranks appear exactly twice, three times and
// four times in the hand.
func rankShape(cards []*Card) (pairs, trips, quads int) {
	counts := map[Rank]int{}
	for _, c := range cards {
		counts[c.Rank()]++
	}
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}
	return pairs, trips, quads
}
