// Package pipeline provides the conversion pipeline for bls2brs.
//
// This package implements the complete read → convert → render pipeline
// used by the CLI. Keeping it out of the CLI lets tests and other front ends
// run conversions with the same caching and defaults.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Convert: Parse the source save and map every brick ([ConvertSave])
//  2. Render: Encode the converted document in each requested format
//     ([Render]): the binary save ("brs") and a JSON dump ("json")
//
// Both stages are cached independently by [Runner].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "castle.bls",
//	    Formats: []string{"brs"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	brs := result.Artifacts["brs"]
package pipeline

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bls2brs/pkg/brs"
	"github.com/matzehuels/bls2brs/pkg/cache"
	"github.com/matzehuels/bls2brs/pkg/core/convert"
	"github.com/matzehuels/bls2brs/pkg/core/mapping"
	"github.com/matzehuels/bls2brs/pkg/errors"
)

// =============================================================================
// Formats
// =============================================================================

// Format constants for output formats.
const (
	FormatBRS  = "brs"
	FormatJSON = "json"
)

// DefaultFormat is the output format when none is requested.
const DefaultFormat = FormatBRS

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatBRS:  true,
	FormatJSON: true,
}

// Extension returns the file extension for an output format.
func Extension(format string) string {
	if format == FormatBRS {
		return errors.TargetExt
	}
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a conversion.
type Options struct {
	// Input is the path of the source save. It is read unless Data is set,
	// and its base name is stamped into the description.
	Input string `json:"input"`

	// Formats lists the outputs to render. Defaults to brs.
	Formats []string `json:"formats,omitempty"`

	MapName    string `json:"map_name,omitempty"`
	AuthorName string `json:"author_name,omitempty"`

	// NoPrefix leaves the source description unchanged instead of
	// prepending a "Converted from ..." line.
	NoPrefix bool `json:"no_prefix,omitempty"`

	// Refresh bypasses cached results. Fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Data   []byte           `json:"-"` // source save content, overrides reading Input
	Logger *log.Logger      `json:"-"`
	Now    func() time.Time `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Save is the converted document.
	Save *brs.SaveData

	// Summary describes how the bricks converted.
	Summary Summary

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Summary is the cacheable part of a conversion report.
type Summary struct {
	Success      int                 `json:"success"`
	Failure      int                 `json:"failure"`
	BadColor     int                 `json:"bad_color,omitempty"`
	TargetBricks int                 `json:"target_bricks"`
	Unmapped     []convert.NameCount `json:"unmapped,omitempty"`
}

// Total returns the number of source bricks read.
func (s Summary) Total() int { return s.Success + s.Failure }

func summarize(rep *convert.Report) Summary {
	return Summary{
		Success:      rep.Success,
		Failure:      rep.Failure,
		BadColor:     rep.BadColor,
		TargetBricks: len(rep.Save.Bricks),
		Unmapped:     rep.UnmappedByCount(),
	}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	InputBytes  int
	ConvertTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ConvertHit bool // Whether the converted document came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: brs, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateInputPath(o.Input); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	o.validated = true
	return nil
}

// InputName returns the base name of the input file.
func (o *Options) InputName() string {
	return filepath.Base(o.Input)
}

// ConversionKeyOpts returns cache key options for the convert stage.
func (o *Options) ConversionKeyOpts() cache.ConversionKeyOpts {
	return cache.ConversionKeyOpts{
		RulesVersion: mapping.Version,
		InputName:    o.InputName(),
		MapName:      o.MapName,
		AuthorName:   o.AuthorName,
		NoPrefix:     o.NoPrefix,
	}
}

// ArtifactKeyOpts returns cache key options for rendering one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

func (o *Options) convertOptions() convert.Options {
	return convert.Options{
		MapName:    o.MapName,
		AuthorName: o.AuthorName,
		Now:        o.Now,
		Logger:     o.Logger,
	}
}
