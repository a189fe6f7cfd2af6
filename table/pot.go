package table

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/tdorobantu/holdem/hand"

	"gopkg.in/mgo.v2/bson"
)

// Results is a mapping of each seat to its showdown result.
type Results map[int]*Result

// Share is the rights a winner has to the pot.
type Share string

const (
	// Won indicates that the pot was won outright.
	Won Share = "Won"

	// Split indicates that the pot was split between tied hands.
	Split Share = "Split"
)

// A Result is a player's winning result from a showdown.
type Result struct {
	Hand  *hand.Hand `json:"hand"`
	Chips int        `json:"chips"`
	Share Share      `json:"share"`
}

// String returns a string useful for debugging.
func (r *Result) String() string {
	const format = "%s for %d chips with %s"
	return fmt.Sprintf(format, r.Share, r.Chips, r.Hand)
}

// MarshalJSON implements the json.Marshaler interface.
// The json format is:
// {"hand": {"ranking":10,"cards":["A♠","K♠","Q♠","J♠","T♠"],"description":"royal flush"}, "chips": 4, "share": "Won"}
func (r *Result) MarshalJSON() ([]byte, error) {
	j := ResultJSON{Chips: r.Chips, Share: r.Share}
	if r.Hand != nil {
		j.Hand = r.Hand.HandJSON()
	}
	return json.Marshal(j)
}

// ResultJSON is the serialized form of a result.
type ResultJSON struct {
	Hand  hand.HandJSON `json:"hand" bson:"hand"`
	Chips int           `json:"chips" bson:"chips"`
	Share Share         `json:"share" bson:"share"`
}

// ResultJSON returns the serializable form of the result.
func (r *Result) ResultJSON() ResultJSON {
	resultJSON := ResultJSON{
		Chips: r.Chips,
		Share: r.Share,
	}
	if r.Hand != nil {
		resultJSON.Hand = r.Hand.HandJSON()
	}
	return resultJSON
}

// A Pot is the collection of contributions made by players during a hand.
// After the showdown, the pot's chips are divided among the winners.
type Pot struct {
	contributions map[int]int
	sync.RWMutex
}

// newPot returns a pot with zero contributions for all seats.
func newPot(numOfSeats int) *Pot {
	contributions := map[int]int{}
	for i := 0; i < numOfSeats; i++ {
		contributions[i] = 0
	}
	return &Pot{contributions: contributions}
}

// String returns a string useful for debugging.
func (p *Pot) String() string {
	const format = "contributions: %v"
	return fmt.Sprintf(format, p.contributions)
}

// GetContribution returns the chips the seat has put into the pot.
func (p *Pot) GetContribution(seat int) int {
	p.RLock()
	defer p.RUnlock()
	return p.contributions[seat]
}

// Chips returns the number of chips in the pot.
func (p *Pot) Chips() int {
	chips := 0
	p.RLock()
	for _, c := range p.contributions {
		chips += c
	}
	p.RUnlock()
	return chips
}

// contribute contributes the chip amount from the seat given
func (p *Pot) contribute(seat, chips int) {
	if chips < 0 {
		panic("table: pot contribute negative bet amount")
	}
	p.Lock()
	p.contributions[seat] += chips
	p.Unlock()
}

// take creates results with the seat taking the entire pot
func (p *Pot) take(seat int) Results {
	return Results{
		seat: {Hand: nil, Chips: p.Chips(), Share: Won},
	}
}

// payout divides the pot between the winning seats.  Split pots divide
// evenly; odd chips go to the earliest winning seat after the button.
func (p *Pot) payout(winners map[int]*hand.Hand, button int) Results {
	results := Results{}
	winningSeats := []int{}
	share := Won
	if len(winners) > 1 {
		share = Split
	}
	for seat, h := range winners {
		winningSeats = append(winningSeats, seat)
		results[seat] = &Result{
			Hand:  h,
			Chips: p.Chips() / len(winners),
			Share: share,
		}
	}
	sort.IntSlice(winningSeats).Sort()

	numOfSeats := len(p.contributions)
	remainder := p.Chips() % len(winners)
	seatToCheck := (button + 1) % numOfSeats
	for remainder > 0 {
		for _, seat := range winningSeats {
			if seat == seatToCheck {
				results[seat].Chips++
				remainder--
				break
			}
		}
		seatToCheck = (seatToCheck + 1) % numOfSeats
	}
	return results
}

// GetBSON implements bson.Getter.
func (p *Pot) GetBSON() (interface{}, error) {
	return p.PotJSON(), nil
}

// SetBSON implements bson.Setter.
func (p *Pot) SetBSON(raw bson.Raw) error {
	pJSON := &PotJSON{}
	if err := raw.Unmarshal(pJSON); err != nil {
		return err
	}
	return p.fromPotJSON(pJSON)
}

// PotJSON is the serialized form of a pot.
type PotJSON struct {
	Contributions map[string]int `json:"contributions" bson:"contributions"`
	Chips         int            `json:"chips" bson:"chips"`
}

// PotJSON returns the serializable form of the pot.
func (p *Pot) PotJSON() *PotJSON {
	m := map[string]int{}
	p.RLock()
	for seat, chips := range p.contributions {
		seatStr := strconv.FormatInt(int64(seat), 10)
		m[seatStr] = chips
	}
	p.RUnlock()

	return &PotJSON{
		Contributions: m,
		Chips:         p.Chips(),
	}
}

// MarshalJSON conforms to the json.Marshaler interface
func (p *Pot) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.PotJSON())
}

// UnmarshalJSON conforms to the json.Unmarshaler interface
func (p *Pot) UnmarshalJSON(b []byte) error {
	j := &PotJSON{}
	if err := json.Unmarshal(b, j); err != nil {
		return err
	}
	return p.fromPotJSON(j)
}

func (p *Pot) fromPotJSON(j *PotJSON) error {
	m := map[int]int{}
	for seatStr, chips := range j.Contributions {
		seat, err := strconv.ParseInt(seatStr, 10, 64)
		if err != nil {
			return err
		}
		m[int(seat)] = chips
	}
	p.Lock()
	p.contributions = m
	p.Unlock()
	return nil
}
