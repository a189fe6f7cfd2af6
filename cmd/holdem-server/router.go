package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/tdorobantu/holdem/hand"
	"github.com/tdorobantu/holdem/table"
)

// Router builds the diagnostics API over the showdown engine.
func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/api/classify", handleClassify)
	r.Post("/api/showdown", handleShowdown)
	return r
}

type classifyRequest struct {
	Cards []string `json:"cards"`
}

// handleClassify classifies a five card hand.
// Request: {"cards":["Ah","Kh","Qh","Jh","Th"]}
func handleClassify(w http.ResponseWriter, req *http.Request) {
	var body classifyRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cards, err := parseCards(body.Cards)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	h, err := hand.New(cards)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, h.HandJSON())
}

type showdownRequest struct {
	Players []struct {
		Name      string   `json:"name"`
		HoleCards []string `json:"holeCards"`
		Folded    bool     `json:"folded"`
	} `json:"players"`
	Board []string `json:"board"`
}

// handleShowdown evaluates a showdown between the given players.
// Request: {"players":[{"name":"alice","holeCards":["As","Ks"]}],"board":["2c","7d","9s","Jc","Qh"]}
func handleShowdown(w http.ResponseWriter, req *http.Request) {
	var body showdownRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	board, err := parseCards(body.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	players := make([]*table.Player, len(body.Players))
	for i, p := range body.Players {
		holeCards, err := parseCards(p.HoleCards)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		players[i] = table.NewPlayer(i, p.Name, holeCards)
		if p.Folded {
			players[i].Fold()
		}
	}

	result, err := table.EvaluateShowdown(players, board)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func parseCards(list []string) ([]*hand.Card, error) {
	cards := make([]*hand.Card, len(list))
	for i, s := range list {
		c, err := hand.ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warning("could not write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
