package world

// Cell coordinate helpers. Cells are keyed by a packed int64 rather than a
// formatted string so a cache lookup costs no allocation.

// CellKey packs integer cell coordinates into a single map key.
func CellKey(cx, cy int64) int64 {
	return cx<<32 | int64(uint32(cy))
}

// Mixing constants for CellSeed. Frozen: changing any of them re-rolls every
// cell in every existing world, breaking discovered-station identity.
const (
	seedMixX   = 0x9E3779B185EBCA87
	seedMixY   = 0xC2B2AE3D27D4EB4F
	seedFinal  = 0xFF51AFD7ED558CCD
	seedShiftA = 33
	seedShiftB = 29
)

// CellSeed derives the deterministic PRNG seed for a cell from its integer
// coordinates and the world seed: each coordinate is mixed with a distinct
// large odd prime, the world seed is folded in by XOR, and an xorshift-
// multiply finalizer spreads the bits. The result is mapped to a positive
// non-zero value suitable for seeding the generator.
func CellSeed(cx, cy int64, worldSeed int64) int64 {
	h := uint64(cx)*seedMixX + uint64(cy)*seedMixY
	h ^= uint64(worldSeed)
	h ^= h >> seedShiftA
	h *= seedFinal
	h ^= h >> seedShiftB
	return int64(h&0x7FFFFFFFFFFFFFFF) | 1
}
