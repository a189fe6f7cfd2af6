package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"

	"github.com/tdorobantu/holdem/hand"
	"github.com/tdorobantu/holdem/table"
)

func main() {
	buyIn := flag.Int("buyin", 100, "chips each player starts with")
	bigBlind := flag.Int("bigblind", 2, "big blind amount")
	flag.Parse()

	pterm.DefaultHeader.WithFullWidth().Println("TEXAS HOLD'EM")

	input, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Player names (comma separated)").
		WithDefaultValue("alice,bob").
		Show()
	names := []string{}
	for _, name := range strings.Split(input, ",") {
		names = append(names, strings.TrimSpace(name))
	}

	tbl, err := table.New(table.NewConfig(*buyIn, *bigBlind), hand.NewDealer(), names)
	if err != nil {
		log.WithError(err).Fatal("could not create table")
	}

	for {
		if err := playHand(tbl); err != nil {
			log.WithError(err).Fatal("hand failed")
		}
		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another hand?").
			WithDefaultValue(true).
			Show()
		if !again {
			return
		}
	}
}

func playHand(tbl *table.Table) error {
	if err := tbl.NextHand(); err != nil {
		return err
	}
	render(tbl)

	streets := []func() error{tbl.DealFlop, tbl.DealTurn, tbl.DealRiver}
	for _, deal := range streets {
		if done := bettingRound(tbl); done {
			break
		}
		if err := deal(); err != nil {
			return err
		}
		render(tbl)
	}

	result, results, err := tbl.Showdown()
	if err != nil {
		return err
	}
	renderShowdown(tbl, result, results)
	return nil
}

// bettingRound prompts each active player once.  It reports whether only
// one player remains.
func bettingRound(tbl *table.Table) bool {
	for _, p := range tbl.ActivePlayers() {
		options := []string{"check", "bet", "fold"}
		action, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText(p.Name() + " to act").
			Show()

		switch action {
		case "fold":
			if err := tbl.Fold(p.Name()); err != nil {
				pterm.Error.Println(err)
			}
		case "bet":
			input, _ := pterm.DefaultInteractiveTextInput.
				WithDefaultText(p.Name() + " bet amount").
				WithDefaultValue(strconv.Itoa(tbl.Opts().Stakes.BigBet)).
				Show()
			chips, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil {
				pterm.Error.Println("not a number:", input)
				continue
			}
			if err := tbl.PlaceBet(p.Name(), chips); err != nil {
				pterm.Error.Println(err)
			}
		}
		if len(tbl.ActivePlayers()) == 1 {
			return true
		}
	}
	return false
}

func render(tbl *table.Table) {
	panels := []pterm.Panel{}
	for _, p := range tbl.Players() {
		panels = append(panels, pterm.Panel{Data: playerBox(p)})
	}
	board := pterm.Panel{Data: boardBox(tbl)}
	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{board},
	}).Render()
}

func playerBox(p *table.Player) string {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTitle(p.Name()).WithTitleTopLeft()
	status := pterm.LightGreen("Active")
	if p.Folded() {
		status = pterm.LightRed("Folded")
	}
	cards := []string{}
	for _, c := range p.HoleCards() {
		cards = append(cards, c.String())
	}
	return box.Sprintf("%s\nCards: %s\nChips: %d\nBet: %d",
		status, strings.Join(cards, " "), p.Chips(), p.Bet())
}

func boardBox(tbl *table.Table) string {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTitle("Board").WithTitleTopCenter()
	cards := []string{}
	for _, c := range tbl.Board() {
		cards = append(cards, c.String())
	}
	return box.Sprintf("%s\nPot: %d", strings.Join(cards, " "), tbl.Pot().Chips())
}

func renderShowdown(tbl *table.Table, result *table.ShowdownResult, results table.Results) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).
		WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter()
	lines := []string{}
	for seat, r := range results {
		p := tbl.Players()[seat]
		if r.Hand == nil {
			lines = append(lines, pterm.Sprintf("%s takes the pot: %d chips",
				pterm.LightCyan(p.Name()), r.Chips))
			continue
		}
		lines = append(lines, pterm.Sprintf("%s wins %d chips with %s",
			pterm.LightCyan(p.Name()), r.Chips, r.Hand.Description()))
	}
	if result.Tie {
		lines = append(lines, "the pot is split")
	}
	pterm.Println(box.Sprint(strings.Join(lines, "\n")))
}
