package table_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tdorobantu/holdem/hand"
	"github.com/tdorobantu/holdem/pokertest"
	"github.com/tdorobantu/holdem/table"
)

func TestNewTable(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(1), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Players()) != 2 {
		t.Fatalf("Players() = %d; want 2", len(tbl.Players()))
	}
	for _, p := range tbl.Players() {
		if p.Chips() != 100 {
			t.Errorf("player %s chips = %d; want 100", p.Name(), p.Chips())
		}
	}
	if tbl.State() != table.Resolved {
		t.Errorf("State() = %s; want Resolved before the first hand", tbl.State())
	}

	if _, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(1), []string{"alice"}); !errors.Is(err, table.ErrInsufficientPlayers) {
		t.Errorf("New with one player error = %v; want ErrInsufficientPlayers", err)
	}
}

func TestNextHandDealsAndPostsBlinds(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(1), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}

	if tbl.State() != table.Dealing {
		t.Errorf("State() = %s; want Dealing", tbl.State())
	}
	if tbl.SmallBlindPlayer().Name() != "alice" || tbl.BigBlindPlayer().Name() != "bob" {
		t.Errorf("blinds = %s/%s; want alice/bob", tbl.SmallBlindPlayer().Name(), tbl.BigBlindPlayer().Name())
	}
	if tbl.Pot().Chips() != 3 {
		t.Errorf("Pot().Chips() = %d; want small + big blind", tbl.Pot().Chips())
	}
	if tbl.Player("alice").Chips() != 99 || tbl.Player("bob").Chips() != 98 {
		t.Errorf("chips after blinds = %d/%d; want 99/98",
			tbl.Player("alice").Chips(), tbl.Player("bob").Chips())
	}
	for _, p := range tbl.Players() {
		if len(p.HoleCards()) != 2 {
			t.Errorf("player %s has %d hole cards; want 2", p.Name(), len(p.HoleCards()))
		}
	}
	if err := tbl.NextHand(); !errors.Is(err, table.ErrInvalidState) {
		t.Errorf("NextHand mid-hand error = %v; want ErrInvalidState", err)
	}
}

// A hand that cannot start because a blind is not covered must leave the
// table untouched and retryable, not stuck mid-deal.
func TestNextHandUncoveredBlindLeavesTableResolved(t *testing.T) {
	tbl, err := table.New(table.NewConfig(1, 2), hand.NewSeededDealer(1), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}

	if err := tbl.NextHand(); !errors.Is(err, table.ErrInvalidBet) {
		t.Fatalf("NextHand() error = %v; want ErrInvalidBet", err)
	}
	if tbl.State() != table.Resolved {
		t.Errorf("State() after failed NextHand = %s; want Resolved", tbl.State())
	}
	if tbl.Pot().Chips() != 0 {
		t.Errorf("Pot().Chips() = %d; want 0", tbl.Pot().Chips())
	}
	for _, p := range tbl.Players() {
		if p.Chips() != 1 || len(p.HoleCards()) != 0 {
			t.Errorf("player %s chips %d cards %d; want untouched 1/0",
				p.Name(), p.Chips(), len(p.HoleCards()))
		}
	}
	// the same error again, not ErrInvalidState
	if err := tbl.NextHand(); !errors.Is(err, table.ErrInvalidBet) {
		t.Errorf("retried NextHand() error = %v; want ErrInvalidBet", err)
	}
}

func TestHoleCardsAreDistinct(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(3), []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealFlop(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealTurn(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealRiver(); err != nil {
		t.Fatal(err)
	}

	seen := map[hand.Card]bool{}
	check := func(cards []*hand.Card) {
		for _, c := range cards {
			if seen[*c] {
				t.Fatalf("card %s dealt twice", c)
			}
			seen[*c] = true
		}
	}
	for _, p := range tbl.Players() {
		check(p.HoleCards())
	}
	check(tbl.Board())
}

func TestDealStreets(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(1), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}

	if err := tbl.DealTurn(); !errors.Is(err, table.ErrInvalidState) {
		t.Errorf("DealTurn before flop error = %v; want ErrInvalidState", err)
	}
	if err := tbl.DealFlop(); err != nil {
		t.Fatal(err)
	}
	if len(tbl.Board()) != 3 {
		t.Fatalf("board after flop = %d cards; want 3", len(tbl.Board()))
	}
	if err := tbl.DealFlop(); !errors.Is(err, table.ErrInvalidState) {
		t.Errorf("second DealFlop error = %v; want ErrInvalidState", err)
	}
	if _, _, err := tbl.Showdown(); !errors.Is(err, table.ErrInvalidState) {
		t.Errorf("Showdown before river error = %v; want ErrInvalidState", err)
	}
	if err := tbl.DealTurn(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealRiver(); err != nil {
		t.Fatal(err)
	}
	if len(tbl.Board()) != 5 {
		t.Fatalf("board after river = %d cards; want 5", len(tbl.Board()))
	}
	if tbl.State() != table.Ready {
		t.Errorf("State() = %s; want Ready", tbl.State())
	}
}

func TestPlaceBet(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(1), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}

	if err := tbl.PlaceBet("alice", 20); err != nil {
		t.Fatal(err)
	}
	if tbl.Player("alice").Chips() != 79 || tbl.Player("alice").Bet() != 21 {
		t.Errorf("alice chips/bet = %d/%d; want 79/21",
			tbl.Player("alice").Chips(), tbl.Player("alice").Bet())
	}

	if err := tbl.PlaceBet("alice", 1); !errors.Is(err, table.ErrInvalidBet) {
		t.Errorf("bet below big blind error = %v; want ErrInvalidBet", err)
	}
	if err := tbl.PlaceBet("alice", 1000); !errors.Is(err, table.ErrInvalidBet) {
		t.Errorf("bet above stack error = %v; want ErrInvalidBet", err)
	}
	if err := tbl.PlaceBet("mallory", 20); !errors.Is(err, table.ErrUnknownPlayer) {
		t.Errorf("bet by unknown player error = %v; want ErrUnknownPlayer", err)
	}
}

// A full hand from deal to payout: both players tie and the pot returns to
// them evenly, the odd chip going to the seat after the button.
func TestSplitPotPayout(t *testing.T) {
	cards := pokertest.Cards(
		"As", "Ks", "Ah", "Kh",
		"2d", "2c", "7d", "9s",
		"3d", "Jc",
		"4d", "Qh",
	)
	tbl, err := table.New(table.NewConfig(100, 2), pokertest.Dealer(cards), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.PlaceBet("alice", 20); err != nil {
		t.Fatal(err)
	}
	if err := tbl.PlaceBet("bob", 20); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealFlop(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealTurn(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealRiver(); err != nil {
		t.Fatal(err)
	}

	result, results, err := tbl.Showdown()
	if err != nil {
		t.Fatal(err)
	}
	if !result.Tie {
		t.Fatal("hand should tie")
	}
	// 43 chips split: 21 and the odd chip to seat 1, first after the button
	if results[0].Chips != 21 || results[1].Chips != 22 {
		t.Errorf("payout = %d/%d; want 21/22", results[0].Chips, results[1].Chips)
	}
	if tbl.Player("alice").Chips() != 100 || tbl.Player("bob").Chips() != 100 {
		t.Errorf("chips after split = %d/%d; want 100/100",
			tbl.Player("alice").Chips(), tbl.Player("bob").Chips())
	}
	if tbl.State() != table.Resolved {
		t.Errorf("State() = %s; want Resolved", tbl.State())
	}
}

func TestFoldedHandPaysLastPlayer(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(5), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Fold("bob"); err != nil {
		t.Fatal(err)
	}

	result, results, err := tbl.Showdown()
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Winners) != 1 || result.Winners[0] != "alice" {
		t.Fatalf("Winners = %v; want alice", result.Winners)
	}
	if results[0].Share != table.Won || results[0].Chips != 3 {
		t.Errorf("result = %v; want the blinds, Won", results[0])
	}
	if tbl.Player("alice").Chips() != 102 {
		t.Errorf("alice chips = %d; want 102", tbl.Player("alice").Chips())
	}
}

func TestButtonRotation(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(5), []string{"alice", "bob", "carol"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := tbl.NextHand(); err != nil {
			t.Fatal(err)
		}
		if tbl.Button() != i {
			t.Errorf("hand %d button = %d; want %d", i, tbl.Button(), i)
		}
		if err := tbl.Fold(tbl.SmallBlindPlayer().Name()); err != nil {
			t.Fatal(err)
		}
		if err := tbl.Fold(tbl.BigBlindPlayer().Name()); err != nil {
			t.Fatal(err)
		}
		if _, _, err := tbl.Showdown(); err != nil {
			t.Fatal(err)
		}
	}
	if tbl.HandsPlayed() != 3 {
		t.Errorf("HandsPlayed() = %d; want 3", tbl.HandsPlayed())
	}
}

func TestReset(t *testing.T) {
	tbl, err := table.New(table.NewConfig(100, 2), hand.NewSeededDealer(5), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Fold("bob"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tbl.Showdown(); err != nil {
		t.Fatal(err)
	}

	tbl.Reset()
	if tbl.HandsPlayed() != 0 || tbl.Button() != 0 {
		t.Errorf("Reset left handsPlayed %d button %d", tbl.HandsPlayed(), tbl.Button())
	}
	for _, p := range tbl.Players() {
		if p.Chips() != 100 || len(p.HoleCards()) != 0 || p.Folded() {
			t.Errorf("Reset left player %s with chips %d cards %d folded %t",
				p.Name(), p.Chips(), len(p.HoleCards()), p.Folded())
		}
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}
}

func TestTableJSON(t *testing.T) {
	cards := pokertest.Cards(
		"As", "Ks", "Ah", "Kh",
		"2d", "2c", "7d", "9s",
		"3d", "Jc",
		"4d", "Qh",
	)
	tbl, err := table.New(table.NewConfig(100, 2), pokertest.Dealer(cards), []string{"alice", "bob"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.NextHand(); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DealFlop(); err != nil {
		t.Fatal(err)
	}

	b, err := json.Marshal(tbl)
	if err != nil {
		t.Fatal(err)
	}
	j := table.TableJSON{}
	if err := json.Unmarshal(b, &j); err != nil {
		t.Fatal(err)
	}
	if j.State != table.Dealing {
		t.Errorf("json state = %s; want Dealing", j.State)
	}
	if len(j.Board) != 3 || j.Board[0] != "2♣" {
		t.Errorf("json board = %v", j.Board)
	}
	if len(j.Players) != 2 || j.Players[0].Name != "alice" {
		t.Errorf("json players = %v", j.Players)
	}
	if j.Pot.Chips != 3 {
		t.Errorf("json pot = %v; want the blinds", j.Pot)
	}
}
