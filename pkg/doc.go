// Package pkg provides the libraries behind bls2brs, a converter from
// Blockland saves to Brickadia saves.
//
// # Overview
//
// A Blockland save (.bls) is a line-oriented text file: a description, a
// 64-entry color palette and one line per brick naming the brick by its UI
// name. A Brickadia save (.brs) is a compressed binary document whose bricks
// reference an asset table by index and carry explicit sizes in engine
// units. Converting one into the other means recognizing each UI name,
// emitting one or more target bricks for it and translating positions,
// rotations, colors and materials between the two coordinate systems.
//
// # Architecture
//
// The data flow through bls2brs:
//
//	.bls file
//	    ↓
//	[bls] package (stream header and bricks)
//	    ↓
//	[core/mapping] package (UI name → target brick descriptions)
//	    ↓
//	[core/convert] package (placement, palette, document assembly)
//	    ↓
//	[brs] package (binary v4 writer) or [io] package (JSON dump)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/bls2brs/pkg/bls"
//	    "github.com/matzehuels/bls2brs/pkg/brs"
//	    "github.com/matzehuels/bls2brs/pkg/core/convert"
//	)
//
//	r, _ := bls.NewReader(in)
//	report, _ := convert.Convert(r, convert.Options{})
//	_ = brs.Write(out, report.Save)
//
// # Main Packages
//
// ## Formats
//
// [bls] - Streaming reader for Blockland saves, including the Windows-1252
// decoding of names and descriptions.
//
// [brs] - The target document model and the v4 binary writer with its
// bit-packed, zlib-compressed sections.
//
// [io] - JSON import and export of target documents, used for debugging and
// as the cached form of a conversion.
//
// ## Core Domain Logic
//
// [core/mapping] - The brick table: literal names plus ordered regular
// expressions for the parametric brick families.
//
// [core/convert] - The converter: coordinate transforms, color and material
// translation, palette interning and per-name memoization.
//
// ## Infrastructure
//
// [pipeline] - Read → convert → render with staged caching, shared by the CLI
// and tests.
//
// [cache] - Cache interface, file and null implementations, key derivation.
//
// [observability] - Hooks for conversion and cache events.
//
// [errors] - Coded errors and input path validation.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                     # All tests
//	go test ./pkg/core/mapping/...    # Specific package
//	go test -run Property ./pkg/...   # Property tests only
//
// [bls]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/bls
// [brs]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/brs
// [io]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/io
// [core/mapping]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/core/mapping
// [core/convert]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/core/convert
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bls2brs/pkg/buildinfo
package pkg
