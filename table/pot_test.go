package table

import (
	"encoding/json"
	"testing"

	"github.com/tdorobantu/holdem/hand"
	"github.com/tdorobantu/holdem/pokertest"
)

func newTestHand(t *testing.T, cards ...string) *hand.Hand {
	t.Helper()
	h, err := hand.New(pokertest.Cards(cards...))
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestPotContributions(t *testing.T) {
	pot := newPot(3)
	pot.contribute(0, 5)
	pot.contribute(1, 10)
	pot.contribute(0, 5)

	if pot.Chips() != 20 {
		t.Fatalf("Chips() = %d; want 20", pot.Chips())
	}
	if pot.GetContribution(0) != 10 {
		t.Errorf("GetContribution(0) = %d; want 10", pot.GetContribution(0))
	}
	if pot.GetContribution(2) != 0 {
		t.Errorf("GetContribution(2) = %d; want 0", pot.GetContribution(2))
	}
}

func TestPotContributeNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("contribute(-1) should panic")
		}
	}()
	newPot(2).contribute(0, -1)
}

func TestPotTake(t *testing.T) {
	pot := newPot(3)
	pot.contribute(0, 10)
	pot.contribute(1, 10)
	pot.contribute(2, 10)

	results := pot.take(1)
	if len(results) != 1 {
		t.Fatalf("take produced %d results; want 1", len(results))
	}
	r := results[1]
	if r == nil || r.Chips != 30 || r.Share != Won || r.Hand != nil {
		t.Errorf("take result = %v", r)
	}
}

func TestPotPayoutSplit(t *testing.T) {
	pot := newPot(3)
	pot.contribute(0, 11)
	pot.contribute(1, 11)
	pot.contribute(2, 11)

	h := newTestHand(t, "Ad", "Ac", "Kh", "7c", "2h")
	winners := map[int]*hand.Hand{0: h, 2: h}

	// 33 chips split two ways; the odd chip goes to the first winning
	// seat after the button
	results := pot.payout(winners, 1)
	if len(results) != 2 {
		t.Fatalf("payout produced %d results; want 2", len(results))
	}
	if results[2].Chips != 17 || results[0].Chips != 16 {
		t.Errorf("payout chips = %d and %d; want 17 and 16", results[2].Chips, results[0].Chips)
	}
	for _, r := range results {
		if r.Share != Split {
			t.Errorf("payout share = %s; want Split", r.Share)
		}
	}
}

func TestPotPayoutSingleWinner(t *testing.T) {
	pot := newPot(2)
	pot.contribute(0, 10)
	pot.contribute(1, 10)

	h := newTestHand(t, "As", "Ks", "Qs", "Js", "Ts")
	results := pot.payout(map[int]*hand.Hand{1: h}, 0)
	r := results[1]
	if r == nil || r.Chips != 20 || r.Share != Won {
		t.Fatalf("payout result = %v", r)
	}
	if r.Hand != h {
		t.Error("payout result lost the winning hand")
	}
}

func TestPotJSONRoundTrip(t *testing.T) {
	pot := newPot(2)
	pot.contribute(0, 7)
	pot.contribute(1, 3)

	b, err := json.Marshal(pot)
	if err != nil {
		t.Fatal(err)
	}

	restored := &Pot{}
	if err := json.Unmarshal(b, restored); err != nil {
		t.Fatal(err)
	}
	if restored.Chips() != 10 {
		t.Errorf("restored Chips() = %d; want 10", restored.Chips())
	}
	if restored.GetContribution(0) != 7 {
		t.Errorf("restored GetContribution(0) = %d; want 7", restored.GetContribution(0))
	}
}

func TestResultJSON(t *testing.T) {
	h := newTestHand(t, "As", "Ks", "Qs", "Js", "Ts")
	r := &Result{Hand: h, Chips: 40, Share: Won}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	j := &ResultJSON{}
	if err := json.Unmarshal(b, j); err != nil {
		t.Fatal(err)
	}
	if j.Chips != 40 || j.Share != Won || j.Hand.Description != "royal flush" {
		t.Errorf("result json = %+v", j)
	}
}
