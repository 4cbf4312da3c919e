package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Artifact file names inside the artifact directory, as written by the
// training pipeline.
const (
	encodersFile     = "label_encoders.json"
	scalerFile       = "feature_scaler.json"
	featureNamesFile = "feature_names.json"
	positionFile     = "position_model.json"
	podiumFile       = "podium_model.json"
	pointsFile       = "points_model.json"
	winnerFile       = "winner_model.json"
)

// Store holds every trained artifact the pipeline consumes: categorical
// encoders, the numeric scaler, the canonical feature-name list and the
// estimators. Loaded once at startup and immutable thereafter.
type Store struct {
	Encoders     *EncoderSet
	Scaler       *Scaler
	FeatureNames []string
	Position     *LinearModel
	Podium       *LogisticModel
	Points       *LogisticModel
	Winner       *LogisticModel // optional, nil when not trained
}

// Load reads all artifacts from dir. Any missing or unreadable required
// artifact yields ErrUnavailable: the caller decides whether to run degraded
// (strategy synthesis and the grid fallback need no artifacts) or to refuse
// predictions. The winner classifier alone is optional.
func Load(dir string, logger *logrus.Logger) (*Store, error) {
	store := &Store{}

	var encoders map[string]LabelEncoder
	if err := readJSON(filepath.Join(dir, encodersFile), &encoders); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, encodersFile, err)
	}
	store.Encoders = &EncoderSet{encoders: encoders}

	store.Scaler = &Scaler{}
	if err := readJSON(filepath.Join(dir, scalerFile), store.Scaler); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, scalerFile, err)
	}

	if err := readJSON(filepath.Join(dir, featureNamesFile), &store.FeatureNames); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, featureNamesFile, err)
	}

	store.Position = &LinearModel{}
	if err := readJSON(filepath.Join(dir, positionFile), store.Position); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, positionFile, err)
	}

	store.Podium = &LogisticModel{}
	if err := readJSON(filepath.Join(dir, podiumFile), store.Podium); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, podiumFile, err)
	}

	store.Points = &LogisticModel{}
	if err := readJSON(filepath.Join(dir, pointsFile), store.Points); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, pointsFile, err)
	}

	winner := &LogisticModel{}
	if err := readJSON(filepath.Join(dir, winnerFile), winner); err == nil {
		store.Winner = winner
	} else if logger != nil {
		logger.WithField("artifact", winnerFile).Debug("Winner classifier not present, continuing without it")
	}

	if len(store.Position.Coefficients) != len(store.FeatureNames) {
		return nil, fmt.Errorf("%w: position model has %d coefficients for %d features",
			ErrUnavailable, len(store.Position.Coefficients), len(store.FeatureNames))
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"dir":            dir,
			"features":       len(store.FeatureNames),
			"encoders":       store.Encoders.Features(),
			"winner_present": store.Winner != nil,
		}).Info("Model artifacts loaded")
	}

	return store, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
