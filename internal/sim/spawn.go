package sim

// SpawnInfo is one pre-drawn spawn decision packed into a single byte:
//
//	bits 0-2  delay bucket (8 buckets of spawnDelayStep frames)
//	bits 3-5  enemy kind (values 0-3 bird, 4-7 cactus: a 50/50 split)
//	bits 6-7  variant argument (vertical lane for birds)
//
// Decoding is a pure function of the byte; entries are consumed exactly once
// from the look-ahead queue.
type SpawnInfo byte

const (
	spawnDelayMask  = 0b0000_0111
	spawnKindMask   = 0b0011_1000
	spawnKindShift  = 3
	spawnLaneMask   = 0b1100_0000
	spawnLaneShift  = 6

	// Delay buckets: base 48 frames, 20-frame steps (~0.3s at 60Hz).
	spawnDelayBase = 48
	spawnDelayStep = 20

	// spawnQueueLen is the refill batch size: 4 bytes from one 32-bit draw.
	spawnQueueLen = 4
)

// Delay returns how many frames must elapse since the previous spawn before
// this entry fires.
func (s SpawnInfo) Delay() uint32 {
	return uint32(s&spawnDelayMask)*spawnDelayStep + spawnDelayBase
}

// Kind returns the enemy kind encoded in bits 3-5.
func (s SpawnInfo) Kind() Kind {
	if (s&spawnKindMask)>>spawnKindShift < 4 {
		return KindBird
	}
	return KindCactus
}

// Lane returns the 2-bit variant argument. Only birds use it, as their
// vertical spawn lane.
func (s SpawnInfo) Lane() int {
	return int(s&spawnLaneMask) >> spawnLaneShift
}

// BirdLaneY maps a lane index to the bird's spawn y in pixels.
func BirdLaneY(lane int) int {
	return (lane + 6) * 8
}

// RandSource produces raw 32-bit random values on demand. The session draws
// one value per queue refill and never seeds or otherwise manages the
// generator; *rand.Rand satisfies it directly.
type RandSource interface {
	Uint32() uint32
}

// unpackSpawnBytes splits one 32-bit draw into four queue entries,
// low byte first.
func unpackSpawnBytes(rnd uint32) [spawnQueueLen]SpawnInfo {
	var out [spawnQueueLen]SpawnInfo
	for i := range out {
		out[i] = SpawnInfo((rnd >> (i * 8)) & 0xFF)
	}
	return out
}
