package hand

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// A Hand is a five card combination together with its ranking and the
// rank count signature used for tie breaking.
type Hand struct {
	cards     []*Card
	ranking   Ranking
	signature []rankCount
}

// rankCount records how many cards of a rank value appear in a hand.
type rankCount struct {
	count int
	rank  int
}

// New forms a hand from exactly five distinct cards.  The hand's ranking
// and signature are computed once, at construction.
func New(cards []*Card) (*Hand, error) {
	if err := validateHand(cards); err != nil {
		return nil, err
	}
	c := make([]*Card, 5)
	copy(c, cards)
	sort.Sort(sort.Reverse(byAceHigh(c)))
	h := &Hand{
		cards:   c,
		ranking: classify(c),
	}
	h.signature = signature(c, h.ranking)
	return h, nil
}

// signature lists (count, rank) pairs sorted descending by count and then by
// rank.  In a low ace straight the ace contributes its low value so that the
// five high straight orders below the six high straight.
func signature(cards []*Card, ranking Ranking) []rankCount {
	aceLow := false
	if ranking == Straight || ranking == StraightFlush {
		aceLow = isLowAceStraight(cards) && !isHighAceStraight(cards)
	}

	counts := map[int]int{}
	for _, c := range cards {
		n, _ := c.Rank().Number()
		if aceLow {
			n = c.Rank().aceLowNumber()
		}
		counts[n]++
	}

	sig := make([]rankCount, 0, len(counts))
	for rank, count := range counts {
		sig = append(sig, rankCount{count: count, rank: rank})
	}
	sort.Slice(sig, func(i, j int) bool {
		if sig[i].count != sig[j].count {
			return sig[i].count > sig[j].count
		}
		return sig[i].rank > sig[j].rank
	})
	return sig
}

// Cards returns the hand's five cards sorted by descending rank.
func (h *Hand) Cards() []*Card {
	cards := make([]*Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Ranking returns the hand's ranking.
func (h *Hand) Ranking() Ranking {
	return h.ranking
}

// Description returns a readable description such as "full house aces full
// of kings".
func (h *Hand) Description() string {
	sig := h.signature
	switch h.ranking {
	case HighCard:
		return "high card " + singularAt(sig[0])
	case Pair:
		return "pair of " + pluralAt(sig[0])
	case TwoPair:
		return "two pair " + pluralAt(sig[0]) + " and " + pluralAt(sig[1])
	case ThreeOfAKind:
		return "three of a kind " + pluralAt(sig[0])
	case Straight:
		return "straight " + singularAt(sig[0]) + " high"
	case Flush:
		return "flush " + singularAt(sig[0]) + " high"
	case FullHouse:
		return "full house " + pluralAt(sig[0]) + " full of " + pluralAt(sig[1])
	case FourOfAKind:
		return "four of a kind " + pluralAt(sig[0])
	case StraightFlush:
		return "straight flush " + singularAt(sig[0]) + " high"
	}
	return "royal flush"
}

func singularAt(rc rankCount) string {
	r, _ := RankFromNumber(rc.rank)
	return r.singularName()
}

func pluralAt(rc rankCount) string {
	r, _ := RankFromNumber(rc.rank)
	return r.pluralName()
}

// String returns a string useful for debugging.
func (h *Hand) String() string {
	cards := make([]string, len(h.cards))
	for i, c := range h.cards {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s %s", strings.Join(cards, " "), h.Description())
}

// CompareTo returns a positive value if this hand beats the other, a
// negative value if it loses, and zero if the hands tie.  Hands are compared
// by ranking first and then column by column through their signatures.
func (h *Hand) CompareTo(o *Hand) int {
	if h.ranking != o.ranking {
		return int(h.ranking - o.ranking)
	}
	for i := range h.signature {
		if i >= len(o.signature) {
			break
		}
		hc, oc := h.signature[i], o.signature[i]
		if hc.count != oc.count {
			return hc.count - oc.count
		}
		if hc.rank != oc.rank {
			return hc.rank - oc.rank
		}
	}
	return 0
}

// BestHands selects the winning hands from a pool.  The highest ranking
// achieved anywhere in the pool is found first; every hand of that ranking
// is then filtered column by column on its signature, keeping at each
// column only the hands equal to the current maximum.  More than one
// survivor means the survivors tie.
func BestHands(pool []*Hand) []*Hand {
	if len(pool) == 0 {
		return nil
	}

	best := pool[0].ranking
	for _, h := range pool[1:] {
		if h.ranking > best {
			best = h.ranking
		}
	}

	candidates := []*Hand{}
	for _, h := range pool {
		if h.ranking == best {
			candidates = append(candidates, h)
		}
	}

	columns := len(candidates[0].signature)
	for col := 0; col < columns && len(candidates) > 1; col++ {
		max := candidates[0].signature[col]
		for _, h := range candidates[1:] {
			if c := h.signature[col]; c.count > max.count ||
				(c.count == max.count && c.rank > max.rank) {
				max = c
			}
		}
		remaining := []*Hand{}
		for _, h := range candidates {
			if h.signature[col] == max {
				remaining = append(remaining, h)
			}
		}
		candidates = remaining
	}
	return candidates
}

// An Ordering is the direction hands are sorted in.
type Ordering int

const (
	// ASC sorts hands from lowest to highest.
	ASC Ordering = iota

	// DESC sorts hands from highest to lowest.
	DESC
)

// Sort returns a new slice of hands sorted by the given ordering.
func Sort(o Ordering, hands ...*Hand) []*Hand {
	sorted := make([]*Hand, len(hands))
	copy(sorted, hands)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := sorted[i].CompareTo(sorted[j])
		if o == DESC {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// HandJSON is the serialized form of a hand.
type HandJSON struct {
	Ranking     Ranking  `json:"ranking" bson:"ranking"`
	Cards       []string `json:"cards" bson:"cards"`
	Description string   `json:"description" bson:"description"`
}

// HandJSON returns the serializable form of the hand.
func (h *Hand) HandJSON() HandJSON {
	cards := make([]string, len(h.cards))
	for i, c := range h.cards {
		cards[i] = c.String()
	}
	return HandJSON{
		Ranking:     h.ranking,
		Cards:       cards,
		Description: h.Description(),
	}
}

// MarshalJSON implements the json.Marshaler interface.
// The json format is:
// {"ranking":10,"cards":["A♠","K♠","Q♠","J♠","T♠"],"description":"royal flush"}
func (h *Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.HandJSON())
}

// GetBSON implements bson.Getter.
func (h *Hand) GetBSON() (interface{}, error) {
	return h.HandJSON(), nil
}
