package table

import (
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/tdorobantu/holdem/hand"
)

var (
	// ErrInsufficientPlayers errors occur when a table is created with
	// fewer than two players.
	ErrInsufficientPlayers = errors.New("table: at least two players are required")

	// ErrInvalidBet errors occur when a player attempts to bet an invalid
	// amount.  Bets are invalid if they exceed a player's chips or fall
	// below the big blind.
	ErrInvalidBet = errors.New("table: player attempted invalid bet")

	// ErrUnknownPlayer errors occur when an action refers to a player
	// that is not seated at the table.
	ErrUnknownPlayer = errors.New("table: unknown player")

	// ErrInvalidState errors occur when an operation is attempted outside
	// of the hand lifecycle state that permits it.
	ErrInvalidState = errors.New("table: operation not valid in current state")
)

// State is the lifecycle state of a hand.  Hands move from Dealing through
// Ready to Resolved; a new hand restarts the cycle.
type State string

const (
	// Dealing indicates hole and community cards are still being assigned.
	Dealing State = "Dealing"

	// Ready indicates every active player has a complete seven card pool.
	Ready State = "Ready"

	// Resolved indicates the hand's winner or tie set has been computed.
	Resolved State = "Resolved"
)

// A Table runs hands of Texas Hold'em for a fixed set of players: dealing,
// blind and bet placement, and the showdown.
type Table struct {
	opts        Config
	dealer      hand.Dealer
	deck        *hand.Deck
	players     []*Player
	board       []*hand.Card
	pot         *Pot
	state       State
	button      int
	handsPlayed int
}

// New creates a table with the given configuration and player names.  Each
// player starts with the configured buy in.
func New(opts Config, dealer hand.Dealer, names []string) (*Table, error) {
	if len(names) < 2 {
		return nil, ErrInsufficientPlayers
	}
	t := &Table{
		opts:   opts,
		dealer: dealer,
		deck:   &hand.Deck{Cards: []*hand.Card{}},
		board:  []*hand.Card{},
		pot:    newPot(len(names)),
	}
	for i, name := range names {
		t.players = append(t.players, &Player{
			seat:      i,
			name:      name,
			holeCards: []*hand.Card{},
			chips:     opts.BuyIn,
		})
	}
	t.state = Resolved
	return t, nil
}

// Opts returns the table's configuration.
func (t *Table) Opts() Config {
	return t.opts
}

// State returns the current lifecycle state of the hand.
func (t *Table) State() State {
	return t.state
}

// Board returns the community cards dealt so far.
func (t *Table) Board() []*hand.Card {
	c := make([]*hand.Card, len(t.board))
	copy(c, t.board)
	return c
}

// Pot returns the table's pot.
func (t *Table) Pot() *Pot {
	return t.pot
}

// Players returns the players in seat order.
func (t *Table) Players() []*Player {
	players := make([]*Player, len(t.players))
	copy(players, t.players)
	return players
}

// Player returns the player with the given name.
func (t *Table) Player(name string) *Player {
	for _, p := range t.players {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Button returns the seat of the current small blind.
func (t *Table) Button() int {
	return t.button
}

// HandsPlayed returns the number of completed hands.
func (t *Table) HandsPlayed() int {
	return t.handsPlayed
}

// SmallBlindPlayer returns the player posting the small blind this hand.
func (t *Table) SmallBlindPlayer() *Player {
	return t.players[t.button]
}

// BigBlindPlayer returns the player posting the big blind this hand.
func (t *Table) BigBlindPlayer() *Player {
	return t.players[(t.button+1)%len(t.players)]
}

// ActivePlayers returns the players that have not folded the current hand.
func (t *Table) ActivePlayers() []*Player {
	active := []*Player{}
	for _, p := range t.players {
		if !p.folded {
			active = append(active, p)
		}
	}
	return active
}

// NextHand starts a new hand: the deck is replaced with a freshly shuffled
// one, hole cards and the board are cleared, the blind positions rotate,
// blinds are posted, and each player is dealt two hole cards.  Blind
// coverage is checked before any state changes so a failed start leaves
// the table Resolved and retryable.
func (t *Table) NextHand() error {
	if t.state != Resolved {
		return ErrInvalidState
	}

	button := t.handsPlayed % len(t.players)
	small := t.players[button]
	big := t.players[(button+1)%len(t.players)]
	if small.chips < t.opts.Stakes.SmallBet || big.chips < t.opts.Stakes.BigBet {
		return ErrInvalidBet
	}

	t.deck = t.dealer.Deck()
	t.board = []*hand.Card{}
	t.pot = newPot(len(t.players))
	t.button = button
	for _, p := range t.players {
		p.holeCards = []*hand.Card{}
		p.bet = 0
		p.folded = false
	}
	t.state = Dealing

	// blinds are exempt from the big blind minimum
	t.wager(small, t.opts.Stakes.SmallBet)
	t.wager(big, t.opts.Stakes.BigBet)

	for _, p := range t.players {
		cards, err := t.deck.Deal(2)
		if err != nil {
			return err
		}
		p.holeCards = cards
	}

	log.WithFields(log.Fields{
		"hand":       t.handsPlayed,
		"button":     t.button,
		"smallBlind": t.SmallBlindPlayer().Name(),
		"bigBlind":   t.BigBlindPlayer().Name(),
	}).Info("NextHand: hole cards dealt")
	return nil
}

// PlaceBet wagers chips for the named player.  A bet is invalid if it
// exceeds the player's chips or falls below the big blind.
func (t *Table) PlaceBet(name string, chips int) error {
	p := t.Player(name)
	if p == nil {
		return ErrUnknownPlayer
	}
	if chips > p.chips || chips < t.opts.Stakes.BigBet {
		return ErrInvalidBet
	}
	t.wager(p, chips)
	return nil
}

func (t *Table) wager(p *Player, chips int) {
	p.chips -= chips
	p.bet += chips
	t.pot.contribute(p.seat, chips)
}

// Fold folds the named player's hand.
func (t *Table) Fold(name string) error {
	p := t.Player(name)
	if p == nil {
		return ErrUnknownPlayer
	}
	p.Fold()
	return nil
}

// DealFlop burns a card and deals the three flop cards.
func (t *Table) DealFlop() error {
	return t.dealBoard(0, 3)
}

// DealTurn burns a card and deals the turn.
func (t *Table) DealTurn() error {
	return t.dealBoard(3, 1)
}

// DealRiver burns a card and deals the river.  Once the river is dealt every
// active player has a complete seven card pool and the hand is ready for a
// showdown.
func (t *Table) DealRiver() error {
	if err := t.dealBoard(4, 1); err != nil {
		return err
	}
	t.state = Ready
	return nil
}

func (t *Table) dealBoard(expectBoard, n int) error {
	if t.state != Dealing || len(t.board) != expectBoard {
		return ErrInvalidState
	}
	if err := t.deck.Burn(); err != nil {
		return err
	}
	cards, err := t.deck.Deal(n)
	if err != nil {
		return err
	}
	t.board = append(t.board, cards...)
	return nil
}

// Showdown resolves the current hand.  If one player remains active the pot
// is taken without evaluation; otherwise the hand must be Ready and the
// winners are found by evaluating every active player's combinations.  The
// pot is paid out and the hand becomes Resolved.
func (t *Table) Showdown() (*ShowdownResult, Results, error) {
	if t.state == Resolved {
		return nil, nil, ErrInvalidState
	}
	active := t.ActivePlayers()
	if len(active) == 0 {
		return nil, nil, ErrNoActivePlayers
	}

	if len(active) > 1 && t.state != Ready {
		return nil, nil, ErrInvalidState
	}

	result, err := EvaluateShowdown(t.players, t.board)
	if err != nil {
		return nil, nil, err
	}

	var results Results
	if len(result.Winners) == 1 && result.Ranking == 0 {
		results = t.pot.take(t.Player(result.Winners[0]).seat)
	} else {
		winners := map[int]*hand.Hand{}
		for _, name := range result.Winners {
			winners[t.Player(name).seat] = result.Hands[name]
		}
		results = t.pot.payout(winners, t.button)
	}

	for seat, r := range results {
		t.players[seat].chips += r.Chips
	}
	t.handsPlayed++
	t.state = Resolved

	log.WithFields(log.Fields{
		"hand":    t.handsPlayed,
		"winners": result.Winners,
		"tie":     result.Tie,
		"ranking": result.Ranking.String(),
		"chips":   t.pot.Chips(),
	}).Info("Showdown: hand resolved")
	return result, results, nil
}

// Reset restores the table to its creation state: every player back at the
// buy in with no cards, the hand counter at zero.
func (t *Table) Reset() {
	t.deck = &hand.Deck{Cards: []*hand.Card{}}
	t.board = []*hand.Card{}
	t.pot = newPot(len(t.players))
	t.button = 0
	t.handsPlayed = 0
	t.state = Resolved
	for _, p := range t.players {
		p.holeCards = []*hand.Card{}
		p.chips = t.opts.BuyIn
		p.bet = 0
		p.folded = false
	}
}

// TableJSON is the serialized form of a table.
type TableJSON struct {
	State       State        `json:"state" bson:"state"`
	Board       []string     `json:"board" bson:"board"`
	Players     []PlayerJSON `json:"players" bson:"players"`
	Pot         *PotJSON     `json:"pot" bson:"pot"`
	Button      int          `json:"button" bson:"button"`
	HandsPlayed int          `json:"handsPlayed" bson:"handsPlayed"`
	Stakes      Stakes       `json:"stakes" bson:"stakes"`
}

// TableJSON returns the serializable form of the table.
func (t *Table) TableJSON() TableJSON {
	board := make([]string, len(t.board))
	for i, c := range t.board {
		board[i] = c.String()
	}
	players := make([]PlayerJSON, len(t.players))
	for i, p := range t.players {
		players[i] = p.PlayerJSON()
	}
	return TableJSON{
		State:       t.state,
		Board:       board,
		Players:     players,
		Pot:         t.pot.PotJSON(),
		Button:      t.button,
		HandsPlayed: t.handsPlayed,
		Stakes:      t.opts.Stakes,
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.TableJSON())
}

// GetBSON implements bson.Getter.
func (t *Table) GetBSON() (interface{}, error) {
	return t.TableJSON(), nil
}
