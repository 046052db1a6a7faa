package cliffnet

import "math/bits"

// StructureConstant is one signed term of the Cl(3,0) multiplication
// table: blade Left times blade Right equals Sign times blade Out.
type StructureConstant struct {
	Left  int
	Right int
	Out   int
	Sign  float64
}

// bladeMask maps a component index to the set of basis vectors in its
// blade, bit 0 for e1, bit 1 for e2, bit 2 for e3.
var bladeMask = [NumComponents]uint8{0, 1, 2, 4, 3, 5, 6, 7}

var (
	// cayley holds the 64 structure constants ordered by (Left, Right).
	// It is built once in init and never mutated.
	cayley [NumComponents * NumComponents]StructureConstant

	maskToIndex [NumComponents]int
)

func init() {
	for i, m := range bladeMask {
		maskToIndex[m] = i
	}
	for i := 0; i < NumComponents; i++ {
		for j := 0; j < NumComponents; j++ {
			a, b := bladeMask[i], bladeMask[j]
			cayley[i*NumComponents+j] = StructureConstant{
				Left:  i,
				Right: j,
				Out:   maskToIndex[a^b],
				Sign:  reorderSign(a, b),
			}
		}
	}
}

// reorderSign returns the sign picked up when the concatenated basis
// vectors of blades a and b are sorted into canonical order. Every swap of
// two distinct vectors flips the sign; repeated vectors square to +1.
func reorderSign(a, b uint8) float64 {
	swaps := 0
	for a >>= 1; a != 0; a >>= 1 {
		swaps += bits.OnesCount8(a & b)
	}
	if swaps&1 == 1 {
		return -1
	}
	return 1
}

// BladeProduct returns the blade and sign of the product of basis blades i
// and j.
func BladeProduct(i, j int) (out int, sign float64) {
	c := cayley[i*NumComponents+j]
	return c.Out, c.Sign
}

// StructureConstants returns a copy of the multiplication table.
func StructureConstants() []StructureConstant {
	out := make([]StructureConstant, len(cayley))
	copy(out, cayley[:])
	return out
}
