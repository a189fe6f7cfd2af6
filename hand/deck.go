package hand

import (
	"errors"
	"math/rand"
	"time"
)

// ErrDeckExhausted errors occur when more cards are requested from a deck
// than remain in it.
var ErrDeckExhausted = errors.New("hand: deck exhausted")

// A Deck is an ordered set of cards remaining to be dealt.  A fresh deck
// holds the 52 distinct cards; dealt cards do not reappear until Reset.
type Deck struct {
	Cards []*Card `json:"cards" bson:"cards"`
}

// NewDeck returns a full deck in canonical order.
func NewDeck() *Deck {
	return &Deck{Cards: Cards()}
}

// Reset restores the deck to the canonical 52 card ordering, discarding any
// record of dealt cards.
func (d *Deck) Reset() {
	d.Cards = Cards()
}

// Shuffle permutes the remaining cards uniformly using the given source.
func (d *Deck) Shuffle(r *rand.Rand) {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Len returns the number of cards remaining in the deck.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Pop removes and returns the top card of the deck.  It fails with
// ErrDeckExhausted if the deck is empty.
func (d *Deck) Pop() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrDeckExhausted
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c, nil
}

// Deal removes and returns n cards from the top of the deck.  It fails with
// ErrDeckExhausted if fewer than n cards remain, leaving the deck untouched.
func (d *Deck) Deal(n int) ([]*Card, error) {
	if n < 0 || n > len(d.Cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]*Card, n)
	for i := 0; i < n; i++ {
		cards[i], _ = d.Pop()
	}
	return cards, nil
}

// Burn discards the top card of the deck, as done before each community
// card street.
func (d *Deck) Burn() error {
	_, err := d.Pop()
	return err
}

// A Dealer provides fresh decks for each hand.
type Dealer interface {
	Deck() *Deck
}

type shuffledDealer struct {
	r *rand.Rand
}

// NewDealer returns a dealer whose decks are shuffled uniformly from a
// time based seed.
func NewDealer() Dealer {
	return NewSeededDealer(time.Now().UnixNano())
}

// NewSeededDealer returns a dealer whose deck sequence is reproducible from
// the given seed.
func NewSeededDealer(seed int64) Dealer {
	return &shuffledDealer{r: rand.New(rand.NewSource(seed))}
}

func (d *shuffledDealer) Deck() *Deck {
	deck := NewDeck()
	deck.Shuffle(d.r)
	return deck
}
