// Package io provides JSON import and export for converted save documents.
//
// # Overview
//
// The binary save format written by [brs.Write] is compact but opaque. This
// package serializes the same [brs.SaveData] to JSON so a conversion can be
// inspected, diffed, or cached and later re-encoded without re-reading the
// source save.
//
// # JSON Format
//
//	{
//	  "map": "Unknown",
//	  "author": {"id": "00000000-0000-0000-0000-000000000000", "name": "Unknown"},
//	  "description": "Converted from castle.bls with bls2brs.",
//	  "save_time": "2020-05-01T12:00:00Z",
//	  "mods": [],
//	  "brick_assets": ["PB_DefaultBrick"],
//	  "colors": [[255, 0, 0, 255]],
//	  "materials": ["BMC_Plastic", "BMC_Glow", "BMC_Metallic"],
//	  "brick_owners": [{"id": "ffffffff-ffff-ffff-ffff-ffffffffffff", "name": "PUBLIC"}],
//	  "bricks": [
//	    {"asset": 0, "size": [10, 20, 6], "position": [0, 0, 6],
//	     "direction": 4, "rotation": 1, "collision": true, "visibility": true,
//	     "material": 0, "color": 0, "owner": 0}
//	  ]
//	}
//
// Colors are [r, g, b, a] byte arrays. A brick references the color table
// with "color", or carries its own color in "rgba".
//
// # Import
//
// [ReadJSON], [ImportJSON] and [Unmarshal] decode a document and validate
// its indices with [brs.SaveData.Validate].
//
// # Export
//
// [WriteJSON] and [Marshal] encode a document. Encoding followed by import
// reproduces the document exactly.
//
// [brs.Write]: github.com/matzehuels/bls2brs/pkg/brs.Write
// [brs.SaveData]: github.com/matzehuels/bls2brs/pkg/brs.SaveData
// [brs.SaveData.Validate]: github.com/matzehuels/bls2brs/pkg/brs.SaveData.Validate
package io
