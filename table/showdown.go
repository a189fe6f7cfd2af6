package table

import (
	"errors"
	"sort"

	"github.com/tdorobantu/holdem/hand"
)

// ErrNoActivePlayers errors occur when a showdown is evaluated with zero
// non-folded players.
var ErrNoActivePlayers = errors.New("table: showdown requires at least one active player")

// ErrIncompleteHoleCards errors occur when an active player enters a
// showdown without two hole cards.
var ErrIncompleteHoleCards = errors.New("table: active player is missing hole cards")

// A ShowdownResult identifies the winning player of a hand, or the set of
// players whose best hands tie.
type ShowdownResult struct {

	// Winners holds the winning player names.  A single entry is an
	// outright win; multiple entries are a tie.
	Winners []string `json:"winners" bson:"winners"`

	// Tie reports whether the pot is shared.
	Tie bool `json:"tie" bson:"tie"`

	// Ranking is the best ranking achieved across the table.  It is zero
	// when the hand was won without evaluation (everyone else folded).
	Ranking hand.Ranking `json:"ranking,omitempty" bson:"ranking,omitempty"`

	// Hands maps each winner to a winning five card combination.  It is
	// nil when no evaluation was performed or when high card hole
	// comparison decided the hand.
	Hands map[string]*hand.Hand `json:"hands,omitempty" bson:"hands,omitempty"`
}

// EvaluateShowdown resolves a showdown between the given players over the
// community cards.  Folded players are ignored.  If exactly one player
// remains, that player wins unconditionally with no hand evaluation.
// Otherwise every five card combination of each active player's hole and
// community cards is classified; the best ranking pooled across the whole
// table selects the candidate combinations, and the tiebreaker narrows
// them to a winner or a tie set.
func EvaluateShowdown(players []*Player, board []*hand.Card) (*ShowdownResult, error) {
	active := []*Player{}
	for _, p := range players {
		if !p.Folded() {
			active = append(active, p)
		}
	}

	if len(active) == 0 {
		return nil, ErrNoActivePlayers
	}
	if len(active) == 1 {
		return &ShowdownResult{Winners: []string{active[0].Name()}}, nil
	}

	pool := []*hand.Hand{}
	owners := map[*hand.Hand]*Player{}
	for _, p := range active {
		if len(p.HoleCards()) != 2 {
			return nil, ErrIncompleteHoleCards
		}
		cards := append(p.HoleCards(), board...)
		for _, combo := range hand.Combinations(cards, 5) {
			h, err := hand.New(combo)
			if err != nil {
				return nil, err
			}
			pool = append(pool, h)
			owners[h] = p
		}
	}

	best := hand.Ranking(0)
	for _, h := range pool {
		if h.Ranking() > best {
			best = h.Ranking()
		}
	}

	// With no pairing, flush, or straight anywhere on the table only the
	// players' hole cards matter.
	if len(pool) == 0 || best == hand.HighCard {
		winners := compareHoleCards(active)
		return &ShowdownResult{
			Winners: winners,
			Tie:     len(winners) > 1,
			Ranking: hand.HighCard,
		}, nil
	}

	hands := map[string]*hand.Hand{}
	winners := []string{}
	for _, h := range hand.BestHands(pool) {
		p := owners[h]
		if _, ok := hands[p.Name()]; !ok {
			hands[p.Name()] = h
			winners = append(winners, p.Name())
		}
	}
	sort.Strings(winners)

	return &ShowdownResult{
		Winners: winners,
		Tie:     len(winners) > 1,
		Ranking: best,
		Hands:   hands,
	}, nil
}

// compareHoleCards breaks a table wide high card tie by the hole cards
// alone: highest single card first, then the lower card as the kicker.
// Players surviving both columns tie.
func compareHoleCards(players []*Player) []string {
	high := func(p *Player) (int, int) {
		a, _ := p.HoleCards()[0].Rank().Number()
		b, _ := p.HoleCards()[1].Rank().Number()
		if a < b {
			a, b = b, a
		}
		return a, b
	}

	candidates := players
	for col := 0; col < 2 && len(candidates) > 1; col++ {
		max := 0
		for _, p := range candidates {
			top, kicker := high(p)
			val := top
			if col == 1 {
				val = kicker
			}
			if val > max {
				max = val
			}
		}
		remaining := []*Player{}
		for _, p := range candidates {
			top, kicker := high(p)
			val := top
			if col == 1 {
				val = kicker
			}
			if val == max {
				remaining = append(remaining, p)
			}
		}
		candidates = remaining
	}

	names := make([]string, len(candidates))
	for i, p := range candidates {
		names[i] = p.Name()
	}
	sort.Strings(names)
	return names
}
