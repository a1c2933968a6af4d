// Package convert turns a Blockland save into a Brickadia save document.
//
// # Conversion
//
// [Convert] reads bricks one at a time from a [Source] (normally a
// [bls.Reader]), resolves each UI name through [mapping.Map] and appends the
// resulting target bricks to a [brs.SaveData]. Unmapped bricks are skipped
// and counted in the [Report] by name. Bricks whose color index lies past
// the source palette are skipped too, since that index would land on a
// fixed color appended after it.
//
// For every target brick:
//
//   - Position: source X and Y are swapped, every axis is scaled by 20 and
//     truncated, then the descriptor offset rotated by the source angle is
//     added ([Position]). Results saturate at ±math.MaxInt32.
//   - Rotation: source angle plus the descriptor's rotation offset, mod 4
//     ([Rotation]).
//   - Material: chosen from the source color effect ([Material]).
//   - Color: the source palette index, or the interned index of the
//     descriptor's fixed color.
//
// # Palette
//
// The target color table starts as the gamma-converted source palette
// ([MapColor]), so source color indices carry over unchanged. Fixed colors
// used by descriptors are appended on first use by [Palette]; assets are
// interned the same way.
//
// [bls.Reader]: github.com/matzehuels/bls2brs/pkg/bls.Reader
// [mapping.Map]: github.com/matzehuels/bls2brs/pkg/core/mapping.Map
// [brs.SaveData]: github.com/matzehuels/bls2brs/pkg/brs.SaveData
package convert
