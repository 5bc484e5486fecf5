// Package memory implements the memory match game: a face-down deck of
// symbol pairs, flipped two at a time against a countdown.
package memory

import "github.com/vovakirdan/milkyway-arcade/internal/core"

// Card is one tile of the deck.
type Card struct {
	ID      int    `json:"id"`
	Symbol  string `json:"symbol"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

// Deck is the dealt cards in table order; a card's ID is its position.
type Deck []Card

// Deal places every symbol twice, shuffles, then numbers the cards 0..len-1.
func Deal(symbols []string, rng core.RNG) Deck {
	d := make(Deck, 0, len(symbols)*2)
	for _, s := range symbols {
		d = append(d, Card{Symbol: s}, Card{Symbol: s})
	}
	core.Shuffle(rng, len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
	for i := range d {
		d[i].ID = i
	}
	return d
}

// Pairs returns the number of pairs in the deck.
func (d Deck) Pairs() int {
	return len(d) / 2
}

// FaceUp counts flipped cards that are not yet matched.
func (d Deck) FaceUp() int {
	n := 0
	for _, c := range d {
		if c.Flipped && !c.Matched {
			n++
		}
	}
	return n
}

// Clone returns a copy.
func (d Deck) Clone() Deck {
	return append(Deck(nil), d...)
}
