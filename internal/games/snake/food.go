package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodKind is the variant of a food item.
type FoodKind int

const (
	FoodPoisonous FoodKind = iota // Shrinks the snake and costs a point
	FoodFit                       // Plain growth
	FoodHighFat                   // More points, slows the snake
	FoodRoyal                     // Most points, speeds the snake up
	FoodKindCount                 // Sentinel for counting kinds
)

func (k FoodKind) String() string {
	switch k {
	case FoodPoisonous:
		return "Poisonous"
	case FoodFit:
		return "Fit"
	case FoodHighFat:
		return "HighFat"
	case FoodRoyal:
		return "Royal"
	default:
		return "?"
	}
}

// Glyph returns the display character for a food kind.
func (k FoodKind) Glyph() rune {
	switch k {
	case FoodPoisonous:
		return 'x'
	case FoodFit:
		return '*'
	case FoodHighFat:
		return '%'
	case FoodRoyal:
		return '$'
	default:
		return '?'
	}
}

// Color returns the display color for a food kind.
func (k FoodKind) Color() core.Color {
	return foodEffects[k].color
}

// Speed bounds enforced by food effects.
const (
	MinSpeed = 50
	MaxSpeed = 300
)

// FoodEffectTicks is how many ticks a Slow or Fast effect lasts.
const FoodEffectTicks = 5

// foodEffect is one row of the effect table.
type foodEffect struct {
	growth     int // +1 grows, -1 drops the tail
	score      int
	speedDelta int
	effect     EffectKind
	message    string
	color      core.Color
	weight     int // Relative spawn weight
}

var foodEffects = [FoodKindCount]foodEffect{
	FoodPoisonous: {growth: -1, score: -1, message: "Poisonous food! -1 point", color: core.ColorPurple, weight: 1},
	FoodFit:       {growth: 1, score: 1, message: "Fit food! +1 point", color: core.ColorGreen, weight: 4},
	FoodHighFat: {growth: 1, score: 3, speedDelta: -50, effect: EffectSlow,
		message: "High-fat food! +3 points (slow)", color: core.ColorGold, weight: 3},
	FoodRoyal: {growth: 1, score: 5, speedDelta: 30, effect: EffectFast,
		message: "Royal food! +5 points (fast)", color: core.ColorOrange, weight: 2},
}

const poisonNoEffectMessage = "Poisonous food! No effect"

// FoodInfo describes a food kind for help screens.
type FoodInfo struct {
	Kind       FoodKind
	Weight     int
	Growth     int
	Score      int
	SpeedDelta int
	Effect     EffectKind
}

// Catalog returns the effect table in spawn-weight order, heaviest first.
func Catalog() []FoodInfo {
	order := []FoodKind{FoodFit, FoodHighFat, FoodRoyal, FoodPoisonous}
	out := make([]FoodInfo, 0, len(order))
	for _, k := range order {
		e := foodEffects[k]
		out = append(out, FoodInfo{
			Kind:       k,
			Weight:     e.weight,
			Growth:     e.growth,
			Score:      e.score,
			SpeedDelta: e.speedDelta,
			Effect:     e.effect,
		})
	}
	return out
}

// Food is the single live food item.
type Food struct {
	Kind     FoodKind
	Pos      core.Point
	consumed bool
}

// Consumed reports whether the food's effect has been applied.
func (f *Food) Consumed() bool {
	return f.consumed
}

// Apply runs the food's effect against the game state and body exactly once.
// Later calls are no-ops and return ok=false.
func (f *Food) Apply(st *State, body *Body) (msg Message, ok bool) {
	if f.consumed {
		return Message{}, false
	}
	f.consumed = true

	e := foodEffects[f.Kind]

	if e.growth < 0 {
		if !body.ShrinkTail() {
			return Message{Text: poisonNoEffectMessage, Color: e.color}, true
		}
	} else {
		for range e.growth {
			body.Grow()
		}
	}

	st.ApplyScoreDelta(e.score)
	if e.speedDelta != 0 {
		st.AdjustSpeed(e.speedDelta)
	}
	if e.effect != EffectNone {
		st.SetEffect(e.effect, FoodEffectTicks)
	}

	return Message{Text: e.message, Color: e.color}, true
}

// pickFoodKind makes a weighted draw over the food kinds.
func pickFoodKind(rng *rand.Rand) FoodKind {
	total := 0
	for _, e := range foodEffects {
		total += e.weight
	}
	roll := rng.Intn(total)
	for k, e := range foodEffects {
		if roll < e.weight {
			return FoodKind(k)
		}
		roll -= e.weight
	}
	return FoodFit
}

// SpawnFood draws a food kind and a free cell. A cell is rejected while any
// occupied position lies closer than clearance on both axes.
func SpawnFood(rng *rand.Rand, grid Grid, occupied []core.Point, clearance, maxAttempts int) (*Food, error) {
	kind := pickFoodKind(rng)

	for range maxAttempts {
		p := grid.RandomCell(rng)
		if !tooClose(p, occupied, clearance) {
			return &Food{Kind: kind, Pos: p}, nil
		}
	}

	return nil, fmt.Errorf("%w: no free cell for food after %d attempts", ErrConfigurationExhausted, maxAttempts)
}

func tooClose(p core.Point, others []core.Point, clearance int) bool {
	for _, o := range others {
		if p.WithinBox(o, clearance) {
			return true
		}
	}
	return false
}
