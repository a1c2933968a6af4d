package mapping

import "github.com/matzehuels/bls2brs/pkg/brs"

// Target grid units per source unit.
const (
	stud  = 5 // horizontal width of one stud
	plate = 2 // height of a flat (1/3 height) brick
	tall  = 6 // height of a full brick
)

var (
	roadLane   = New("PB_DefaultTile").WithColor(brs.RGBA(51, 51, 51, 255))
	roadStripe = New("PB_DefaultTile").WithColor(brs.RGBA(254, 254, 232, 255))
	windowPane = brs.RGBA(255, 255, 255, 76)
)

// literals maps exact UI names to their target bricks. Composite roads are
// authored in the brick's unrotated frame; the converter rotates offsets by
// the placed angle.
var literals = map[string]Mapping{
	// Direct equivalents.
	"1x1 Cone":       {New("B_1x1_Cone")},
	"1x1 Round":      {New("B_1x1_Round")},
	"1x1 Octo Plate": {New("B_1x1F_Octo")},
	"1x1F Round":     {New("B_1x1F_Round")},
	"2x2 Round":      {New("B_2x2_Round")},
	"2x2F Round":     {New("B_2x2F_Round")},
	"Pine Tree":      {New("B_Pine_Tree").WithOffset(0, 0, -6)},
	"2x2 Corner":     {New("B_2x2_Corner").WithRotation(0)},
	"2x2 Octo Plate": {New("B_2x2F_Octo")},
	"8x8 Grill":      {New("B_8x8_Lattice_Plate")},
	"1x4x2 Picket":   {New("B_Picket_Fence")},

	// Approximations.
	"2x2 Disc":        {New("B_2x2F_Round")},
	"Music Brick":     {New("PB_DefaultBrick").WithSize(stud, stud, tall)},
	"1x4x2 Fence":     {New("PB_DefaultBrick").WithSize(stud, 4*stud, 2*tall).WithRotation(0)},
	"2x2x1 Octo Cone": {New("B_2x2_Round")},

	"2x2x2 Cone": {
		New("B_2x_Octo_Cone").WithOffset(0, 0, -2),
		New("B_1x1F_Round").WithOffset(0, 0, 2*tall-2),
	},

	"2x2 Octo": {
		New("B_2x2F_Octo").WithOffset(0, 0, -4),
		New("B_2x2F_Octo"),
		New("B_2x2F_Octo").WithOffset(0, 0, 4),
	},

	"Castle Wall": {
		New("PB_DefaultTile").WithSize(stud, stud, 6*tall).WithOffset(0, -10, 0),
		New("PB_DefaultTile").WithSize(stud, stud, 6*tall).WithOffset(0, 10, 0),
		New("PB_DefaultTile").WithSize(stud, stud, 3*tall).WithOffset(0, 0, -9*plate),
		New("PB_DefaultTile").WithSize(stud, stud, 4*plate).WithOffset(0, 0, 14*plate),
	},

	"1x4x5 Window": {
		New("PB_DefaultBrick").WithSize(stud, 4*stud, plate).WithRotation(0).WithOffset(0, 0, -14*plate),
		New("PB_DefaultTile").WithSize(stud, 4*stud, 5*tall-plate).WithRotation(0).WithOffset(0, 0, plate).
			WithColor(windowPane),
	},

	"32x32 Road": {
		// sidewalks
		New("PB_DefaultBrick").WithSize(9*stud, 32*stud, plate).WithOffset(0, -115, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 32*stud, plate).WithOffset(0, 115, 0),
		// stripes
		roadStripe.WithSize(1*stud, 32*stud, plate).WithOffset(0, -65, 0),
		roadStripe.WithSize(1*stud, 32*stud, plate).WithOffset(0, 65, 0),
		// lanes
		roadLane.WithSize(6*stud, 32*stud, plate).WithOffset(0, -6*stud, 0),
		roadLane.WithSize(6*stud, 32*stud, plate).WithOffset(0, 6*stud, 0),
	},

	"32x32 Road T": {
		New("PB_DefaultBrick").WithSize(9*stud, 32*stud, plate).WithOffset(0, -115, 0),  // top
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(-115, 115, 0), // bottom left
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(115, 115, 0),  // bottom right
		roadStripe.WithSize(1*stud, 32*stud, plate).WithOffset(0, -65, 0),
		roadStripe.WithSize(1*stud, 32*stud, plate).WithOffset(0, 65, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(-13*stud, 23*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(13*stud, 23*stud, 0),
		roadLane.WithSize(6*stud, 32*stud, plate).WithOffset(0, -6*stud, 0),
		roadLane.WithSize(6*stud, 32*stud, plate).WithOffset(0, 6*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithRotation(0).WithOffset(-6*stud, 23*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithRotation(0).WithOffset(6*stud, 23*stud, 0),
	},

	"32x32 Road X": {
		// corner sidewalks
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(-23*stud, -23*stud, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(23*stud, -23*stud, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(-23*stud, 23*stud, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(23*stud, 23*stud, 0),
		// stripe corners
		roadStripe.WithSize(1*stud, 1*stud, plate).WithOffset(13*stud, -13*stud, 0),
		roadStripe.WithSize(1*stud, 1*stud, plate).WithOffset(13*stud, 13*stud, 0),
		roadStripe.WithSize(1*stud, 1*stud, plate).WithOffset(-13*stud, -13*stud, 0),
		roadStripe.WithSize(1*stud, 1*stud, plate).WithOffset(-13*stud, 13*stud, 0),
		// inner stripes
		roadStripe.WithSize(1*stud, 12*stud, plate).WithRotation(0).WithOffset(-13*stud, 0, 0),
		roadStripe.WithSize(1*stud, 12*stud, plate).WithRotation(0).WithOffset(13*stud, 0, 0),
		roadStripe.WithSize(1*stud, 12*stud, plate).WithOffset(0, -13*stud, 0),
		roadStripe.WithSize(1*stud, 12*stud, plate).WithOffset(0, 13*stud, 0),
		// arm stripes
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(-13*stud, 23*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(13*stud, 23*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(-13*stud, -23*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(13*stud, -23*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithOffset(-23*stud, -13*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithOffset(-23*stud, 13*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithOffset(23*stud, -13*stud, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithOffset(23*stud, 13*stud, 0),
		// center lanes
		roadLane.WithSize(6*stud, 6*stud, plate).WithOffset(-6*stud, -6*stud, 0),
		roadLane.WithSize(6*stud, 6*stud, plate).WithOffset(-6*stud, 6*stud, 0),
		roadLane.WithSize(6*stud, 6*stud, plate).WithOffset(6*stud, -6*stud, 0),
		roadLane.WithSize(6*stud, 6*stud, plate).WithOffset(6*stud, 6*stud, 0),
		// arm lanes
		roadLane.WithSize(6*stud, 9*stud, plate).WithRotation(0).WithOffset(-6*stud, 23*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithRotation(0).WithOffset(6*stud, 23*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithRotation(0).WithOffset(-6*stud, -23*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithRotation(0).WithOffset(6*stud, -23*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithOffset(-23*stud, -6*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithOffset(-23*stud, 6*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithOffset(23*stud, -6*stud, 0),
		roadLane.WithSize(6*stud, 9*stud, plate).WithOffset(23*stud, 6*stud, 0),
	},

	"32x32 Road C": {
		// sidewalks
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(-115, 115, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 9*stud, plate).WithOffset(115, -115, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 23*stud, plate).WithRotation(0).WithOffset(115, 45, 0),
		New("PB_DefaultBrick").WithSize(9*stud, 23*stud, plate).WithOffset(-45, -115, 0),
		// stripes
		roadStripe.WithSize(1*stud, 9*stud, plate).WithOffset(-115, 65, 0),
		roadStripe.WithSize(1*stud, 9*stud, plate).WithRotation(0).WithOffset(-65, 115, 0),
		roadStripe.WithSize(1*stud, 22*stud, plate).WithOffset(-50, -65, 0),
		roadStripe.WithSize(1*stud, 22*stud, plate).WithRotation(0).WithOffset(65, 50, 0),
		roadStripe.WithSize(1*stud, 1*stud, plate).WithOffset(65, -65, 0),
		roadStripe.WithSize(1*stud, 1*stud, plate).WithRotation(0).WithOffset(-65, 65, 0),
		// lanes
		roadLane.WithSize(6*stud, 10*stud, plate).WithOffset(-22*stud, 6*stud, 0),
		roadLane.WithSize(6*stud, 16*stud, plate).WithOffset(-16*stud, -6*stud, 0),
		roadLane.WithSize(6*stud, 16*stud, plate).WithRotation(0).WithOffset(6*stud, 16*stud, 0),
		roadLane.WithSize(6*stud, 10*stud, plate).WithRotation(0).WithOffset(-6*stud, 22*stud, 0),
		roadLane.WithSize(6*stud, 6*stud, plate).WithOffset(-6*stud, 6*stud, 0),
		roadLane.WithSize(6*stud, 6*stud, plate).WithOffset(6*stud, -6*stud, 0),
	},
}

// blankPrints are print names that render as an unprinted face, so a
// printed brick carrying one can become a plain tile.
var blankPrints = map[string]bool{
	"Letters/-space": true,
	"1x2f/blank":     true,
	"2x2f/blank":     true,
}
