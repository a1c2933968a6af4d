package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bls2brs/pkg/buildinfo"
	"github.com/matzehuels/bls2brs/pkg/cache"
	"github.com/matzehuels/bls2brs/pkg/errors"
	"github.com/matzehuels/bls2brs/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeConversion = "conversion"
	keyTypeArtifact   = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, keys are scoped to the build version so upgrading the
// converter never serves stale documents.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete read → convert → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	data := opts.Data
	if data == nil {
		var err error
		if data, err = os.ReadFile(opts.Input); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Input)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", opts.Input)
		}
	}

	result := &Result{Stats: Stats{InputBytes: len(data)}}

	// Stage 1: Convert
	hooks := observability.Convert()
	hooks.OnConvertStart(ctx, opts.Input)
	convertStart := time.Now()
	conv, convertHit, err := r.ConvertWithCacheInfo(ctx, data, opts)
	result.Stats.ConvertTime = time.Since(convertStart)
	var stats observability.ConvertStats
	if conv != nil {
		stats = observability.ConvertStats{
			SourceBricks: conv.Summary.Total(),
			TargetBricks: conv.Summary.TargetBricks,
			Unmapped:     conv.Summary.Failure,
		}
	}
	hooks.OnConvertComplete(ctx, opts.Input, stats, result.Stats.ConvertTime, err)
	if err != nil {
		return nil, err
	}
	result.Save = conv.Save
	result.Summary = conv.Summary
	result.CacheInfo.ConvertHit = convertHit

	r.Logger.Debug("converted save",
		"input", opts.InputName(),
		"bricks", conv.Summary.TargetBricks,
		"unmapped", conv.Summary.Failure,
		"cached", convertHit,
		"duration", result.Stats.ConvertTime)

	// Stage 2: Render
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, conv, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ConvertWithCacheInfo converts a source save with caching and returns cache hit info.
func (r *Runner) ConvertWithCacheInfo(ctx context.Context, data []byte, opts Options) (*Conversion, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.ConversionKey(cache.Hash(data), opts.ConversionKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var conv Conversion
			if err := json.Unmarshal(cached, &conv); err == nil {
				if err := decodeConversion(&conv); err == nil {
					observability.Cache().OnCacheHit(ctx, keyTypeConversion)
					return &conv, true, nil // Cache hit
				}
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeConversion)
	}

	conv, err := ConvertSave(data, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if entry, err := json.Marshal(conv); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, entry, cache.TTLConversion); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeConversion, len(entry))
		}
	}

	return conv, false, nil // Cache miss
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, conv *Conversion, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	docHash := cache.Hash(conv.Document)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
				break
			}
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	rendered, err := Render(conv, opts.Formats)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
