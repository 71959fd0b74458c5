package engine

import (
	"math"
	"math/big"

	"github.com/KirkDiggler/talent-api/internal/entities"
)

var (
	eleven  = big.NewInt(11)
	ten     = big.NewInt(10)
	hundred = big.NewInt(100)
)

// Experience returns floor(sum of 10 * 1.1^i for i in [0, level)).
//
// The sum equals 100 * (11^L - 10^L) / 10^L, which is evaluated with exact
// integer arithmetic so the result never depends on call history. Values too
// large for int64 saturate at math.MaxInt64.
func Experience(level int) int64 {
	if level <= 0 {
		return 0
	}

	l := big.NewInt(int64(level))
	num := new(big.Int).Exp(eleven, l, nil)
	den := new(big.Int).Exp(ten, l, nil)
	num.Sub(num, den)
	num.Mul(num, hundred)
	num.Quo(num, den)

	if !num.IsInt64() {
		return math.MaxInt64
	}
	return num.Int64()
}

// PlayerLevel sums spent points across every tree
func (e *Engine) PlayerLevel() int {
	level := 0
	for _, tree := range e.trees {
		level += tree.PointsSpent
	}
	return level
}

// Progression derives level and experience from the current trees
func (e *Engine) Progression() entities.Progression {
	level := e.PlayerLevel()
	return entities.Progression{
		Level:               level,
		Experience:          Experience(level),
		NextLevelExperience: Experience(level + 1),
	}
}
