package predictor

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pitwall/internal/artifacts"
)

// Outcome is one entrant's raw model output. The position estimate is
// advisory: final positions come from the probability ranker, not from here.
type Outcome struct {
	Position int
	// PodiumChance and PointsChance are classifier probabilities in [0,1].
	// Informational only; the externally visible podium/points flags are
	// derived from the final ranked position.
	PodiumChance float64
	PointsChance float64
	// Fallback marks that inference failed and the grid-perturbation
	// estimate was substituted.
	Fallback bool
	// Scaled marks that the fitted scaler applied cleanly; when false the
	// raw vector was fed to the estimators.
	Scaled bool
}

// OutcomePredictor runs the trained estimators over a feature vector, with a
// deterministic degradation path when inference fails.
type OutcomePredictor struct {
	store  *artifacts.Store
	rng    *rand.Rand
	logger *logrus.Logger
}

func NewOutcomePredictor(store *artifacts.Store, rng *rand.Rand, logger *logrus.Logger) *OutcomePredictor {
	return &OutcomePredictor{store: store, rng: rng, logger: logger}
}

// Predict evaluates vec for an entrant starting at grid. Model failures never
// fail the entrant: the position falls back to a perturbed grid slot.
func (p *OutcomePredictor) Predict(vec []float64, grid int) Outcome {
	out := Outcome{Scaled: true}

	scaled, err := p.store.Scaler.Apply(vec)
	if err != nil {
		// Column layout drift between fit time and serving time is
		// survivable; the estimators see the unscaled vector.
		p.logger.WithError(err).Debug("feature scaling skipped")
		scaled = vec
		out.Scaled = false
	}

	pos, err := p.store.Position.Predict(scaled)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"grid": grid,
		}).WithError(err).Warn("position inference failed, using grid fallback")
		return p.fallback(grid)
	}
	out.Position = clampPosition(int(math.Round(pos)))

	if out.PodiumChance, err = p.store.Podium.PredictProba(scaled); err != nil {
		return p.fallback(grid)
	}
	if out.PointsChance, err = p.store.Points.PredictProba(scaled); err != nil {
		return p.fallback(grid)
	}

	return out
}

// fallback perturbs the grid slot by a random offset in [-3, +5], modelling
// that losing places is slightly more likely than gaining them.
func (p *OutcomePredictor) fallback(grid int) Outcome {
	return Outcome{
		Position: clampPosition(grid + p.rng.Intn(9) - 3),
		Fallback: true,
	}
}

func clampPosition(pos int) int {
	if pos < 1 {
		return 1
	}
	if pos > 20 {
		return 20
	}
	return pos
}
