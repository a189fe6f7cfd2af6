// Package pokertest provides deterministic cards and dealers for tests.
package pokertest

import (
	"fmt"

	"github.com/tdorobantu/holdem/hand"
)

// Cards returns the cards for the given two character representations such
// as "Ah" or "Tc".  Cards panics on malformed input so that tests fail
// loudly.
func Cards(list ...string) []*hand.Card {
	cards := []*hand.Card{}
	for _, s := range list {
		c, err := hand.ParseCard(s)
		if err != nil {
			panic(fmt.Sprintf("pokertest: %v", err))
		}
		cards = append(cards, c)
	}
	return cards
}

// Dealer returns a dealer whose decks pop the given cards in order.
func Dealer(cards []*hand.Card) hand.Dealer {
	return &stackedDealer{cards: cards}
}

type stackedDealer struct {
	cards []*hand.Card
}

func (d *stackedDealer) Deck() *hand.Deck {
	cards := make([]*hand.Card, len(d.cards))
	copy(cards, d.cards)
	return &hand.Deck{Cards: cards}
}
