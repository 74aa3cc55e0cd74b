package search

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// RandomMove picks uniformly among moves using rng, so a fixed seed replays
// the same game. It reports false if moves is empty.
func RandomMove(moves []chess.Move, rng *rand.Rand) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
