package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/hermite"
)

// curveFile is the on-disk description of a spline: its control points and
// shape parameters. Tangents and lengths are derived, so this is all that is
// needed to rebuild a spline exactly.
type curveFile struct {
	Points            [][2]float64 `yaml:"points" toml:"points" json:"points"`
	Closed            bool         `yaml:"closed" toml:"closed" json:"closed"`
	Curvature         *float64     `yaml:"curvature" toml:"curvature" json:"curvature"`
	SamplesPerSegment int          `yaml:"samples_per_segment" toml:"samples_per_segment" json:"samples_per_segment"`
}

var errUnsupportedFormat = errors.New("unsupported curve file format")

// parseCurve decodes a curve description. The format is chosen by the file
// extension ext.
func parseCurve(data []byte, ext string) (curveFile, error) {
	var cf curveFile
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cf)
	case ".toml":
		err = toml.Unmarshal(data, &cf)
	case ".json":
		err = json.Unmarshal(data, &cf)
	default:
		return cf, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}
	if err != nil {
		return cf, fmt.Errorf("invalid curve file: %w", err)
	}
	return cf, nil
}

// spline builds the spline described by cf.
func (cf curveFile) spline() (*hermite.Spline, error) {
	opts := hermite.DefaultOptions()
	opts.Closed = cf.Closed
	if cf.Curvature != nil {
		opts.Curvature = *cf.Curvature
	}
	if cf.SamplesPerSegment < 0 {
		return nil, fmt.Errorf("samples_per_segment must not be negative, got %d", cf.SamplesPerSegment)
	}
	if cf.SamplesPerSegment > 0 {
		opts.SamplesPerSegment = cf.SamplesPerSegment
	}
	if len(cf.Points) < 2 {
		return nil, fmt.Errorf("curve needs at least 2 points, got %d", len(cf.Points))
	}

	pts := make([]hermite.Point, len(cf.Points))
	for i, p := range cf.Points {
		pts[i] = hermite.Pt(p[0], p[1])
	}
	return hermite.NewWithOptions(pts, opts), nil
}

// loadCurve reads and decodes the curve file at path.
func loadCurve(path string) (*hermite.Spline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open curve file: %w", err)
	}
	cf, err := parseCurve(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return cf.spline()
}
