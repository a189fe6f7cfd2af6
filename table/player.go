package table

import (
	"fmt"

	"github.com/tdorobantu/holdem/hand"
)

// A Player is a participant in the hands played at a table.  Hole cards,
// bets, and the folded flag are cleared at the start of each hand.
type Player struct {
	seat      int
	name      string
	holeCards []*hand.Card
	chips     int
	bet       int
	folded    bool
}

// NewPlayer forms a standalone player for showdown evaluation outside a
// table, such as diagnostics requests.
func NewPlayer(seat int, name string, holeCards []*hand.Card) *Player {
	return &Player{
		seat:      seat,
		name:      name,
		holeCards: holeCards,
	}
}

// Seat returns the player's seat at the table.
func (p *Player) Seat() int {
	return p.seat
}

// Name returns the player's identifier.
func (p *Player) Name() string {
	return p.name
}

// HoleCards returns the player's two private cards.
func (p *Player) HoleCards() []*hand.Card {
	cards := make([]*hand.Card, len(p.holeCards))
	copy(cards, p.holeCards)
	return cards
}

// Chips returns the number of chips in the player's stack.
func (p *Player) Chips() int {
	return p.chips
}

// Bet returns the number of chips the player has wagered in the current hand.
func (p *Player) Bet() int {
	return p.bet
}

// Folded returns whether or not the player has folded the current hand.
func (p *Player) Folded() bool {
	return p.folded
}

// Fold discards the player's interest in the current hand.
func (p *Player) Fold() {
	p.folded = true
}

// String returns a string useful for debugging.
func (p *Player) String() string {
	const format = "%s seat %d chips %d bet %d folded %t cards %v"
	return fmt.Sprintf(format, p.name, p.seat, p.chips, p.bet, p.folded, p.holeCards)
}

// PlayerJSON is the serialized form of a player.
type PlayerJSON struct {
	Seat      int      `json:"seat" bson:"seat"`
	Name      string   `json:"name" bson:"name"`
	HoleCards []string `json:"holeCards" bson:"holeCards"`
	Chips     int      `json:"chips" bson:"chips"`
	Bet       int      `json:"bet" bson:"bet"`
	Folded    bool     `json:"folded" bson:"folded"`
}

// PlayerJSON returns the serializable form of the player.
func (p *Player) PlayerJSON() PlayerJSON {
	cards := make([]string, len(p.holeCards))
	for i, c := range p.holeCards {
		cards[i] = c.String()
	}
	return PlayerJSON{
		Seat:      p.seat,
		Name:      p.name,
		HoleCards: cards,
		Chips:     p.chips,
		Bet:       p.bet,
		Folded:    p.folded,
	}
}
