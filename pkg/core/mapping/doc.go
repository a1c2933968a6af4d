// Package mapping translates Blockland brick names into Brickadia bricks.
//
// # Overview
//
// Every source brick is identified by its UI name ("2x4", "45° Ramp 2x",
// "32x32 Road T"). [Map] turns a name into a [Mapping]: an ordered list of
// [Desc] values, each describing one target brick by asset name, size, local
// offset, rotation offset and an optional fixed color.
//
// # Rules
//
// Names are resolved in two stages:
//
//  1. Literal rules: an exact-name table covering named assets ("Pine Tree"),
//     approximations ("Music Brick") and composites built from several target
//     bricks ("32x32 Road X").
//  2. Pattern rules: anchored regular expressions for the parametric families
//     (sized bricks and plates, ramps, crests, tiles, baseplates, cubes and
//     the sized shape set). The first matching pattern decides.
//
// A name that matches nothing, or whose matching pattern rejects it (for
// example "72° Inv Ramp" or a size that overflows the target grid), is
// unmapped.
//
// # Units
//
// Target sizes and offsets are in target grid units: one stud is 5 units
// wide, a plate is 2 units tall and a full brick 6. Offsets are expressed in
// the brick's unrotated frame; the converter rotates them by the placed
// brick's angle.
//
// # Concurrency
//
// The rule tables are built at package initialization and never modified.
// [Map] is safe for concurrent use and returns values that share no memory
// with the tables.
package mapping
