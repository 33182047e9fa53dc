// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package ranker

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dmitryikh/leaves"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/metrics"
)

var (
	// ErrModelNotFound is returned when the model artifact does not exist.
	ErrModelNotFound = errors.New("ranking model not found")

	// ErrMalformedModel is returned when the artifact cannot be parsed or does
	// not match the ranking vector layout.
	ErrMalformedModel = errors.New("malformed ranking model")

	// ErrFeatureShape is returned when a vector passed to Score does not have
	// NumFeatures values.
	ErrFeatureShape = errors.New("feature vector has wrong length")
)

// LightGBM scores ranking vectors with a LightGBM text model. It is
// immutable after Load and safe for concurrent use.
type LightGBM struct {
	ensemble *leaves.Ensemble
	path     string
}

// Load reads a LightGBM text model from path. The model must expect exactly
// NumFeatures inputs and, when the file declares feature names, they must
// match FeatureOrder.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(path string, logger zerolog.Logger) (*LightGBM, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat model %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrModelNotFound, path)
	}

	names, err := readFeatureNames(path)
	if err != nil {
		return nil, err
	}
	if names != nil {
		if err := checkFeatureNames(names); err != nil {
			return nil, err
		}
	}

	ensemble, err := parseEnsemble(path)
	if err != nil {
		return nil, err
	}
	if n := ensemble.NFeatures(); n != NumFeatures {
		return nil, fmt.Errorf("%w: model expects %d features, want %d", ErrMalformedModel, n, NumFeatures)
	}
	if g := ensemble.NOutputGroups(); g != 1 {
		return nil, fmt.Errorf("%w: model has %d output groups, want 1", ErrMalformedModel, g)
	}

	logger.Info().
		Str("component", "ranker").
		Str("path", path).
		Int("trees", ensemble.NEstimators()).
		Bool("feature_names_checked", names != nil).
		Msg("Ranking model loaded")

	return &LightGBM{ensemble: ensemble, path: path}, nil
}

// parseEnsemble converts parser panics on inconsistent tree blocks into
// ErrMalformedModel.
func parseEnsemble(path string) (ensemble *leaves.Ensemble, err error) {
	defer func() {
		if r := recover(); r != nil {
			ensemble = nil
			err = fmt.Errorf("%w: %s: %v", ErrMalformedModel, path, r)
		}
	}()

	ensemble, err = leaves.LGEnsembleFromFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedModel, path, err)
	}
	return ensemble, nil
}

// readFeatureNames returns the feature_names header of a LightGBM text
// model, or nil when the header does not declare them.
func readFeatureNames(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "Tree=") {
			break
		}
		if v, ok := strings.CutPrefix(line, "feature_names="); ok {
			return strings.Fields(v), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", ErrMalformedModel, path, err)
	}
	return nil, nil
}

func checkFeatureNames(names []string) error {
	if len(names) != NumFeatures {
		return fmt.Errorf("%w: model declares %d features, want %d", ErrMalformedModel, len(names), NumFeatures)
	}
	for i, name := range names {
		if name != FeatureOrder[i] {
			return fmt.Errorf("%w: feature %d is %q, want %q", ErrMalformedModel, i, name, FeatureOrder[i])
		}
	}
	return nil
}

// Score returns one score per vector, in input order. All vectors are
// evaluated in a single batch.
func (m *LightGBM) Score(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 {
		return []float64{}, nil
	}

	start := time.Now()
	dense := make([]float64, 0, len(vectors)*NumFeatures)
	for i, v := range vectors {
		if len(v) != NumFeatures {
			return nil, fmt.Errorf("%w: vector %d has %d values, want %d", ErrFeatureShape, i, len(v), NumFeatures)
		}
		dense = append(dense, v...)
	}

	scores := make([]float64, len(vectors))
	if err := m.ensemble.PredictDense(dense, len(vectors), NumFeatures, scores, m.ensemble.NEstimators(), 1); err != nil {
		return nil, fmt.Errorf("predict %d vectors: %w", len(vectors), err)
	}

	metrics.RecordScore(len(vectors), time.Since(start))
	return scores, nil
}

// NFeatures returns the number of inputs the model expects.
func (m *LightGBM) NFeatures() int {
	return m.ensemble.NFeatures()
}

// Path returns the file the model was loaded from.
func (m *LightGBM) Path() string {
	return m.path
}
