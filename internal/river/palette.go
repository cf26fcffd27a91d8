package river

import (
	"hash/fnv"

	"github.com/riverline/riverline/internal/geom"
)

// ColorFor assigns a participant's stream color. Participants seen while
// palette entries remain take the next palette color by insertion order;
// once the palette is exhausted, the participant ID hashes into the
// palette (FNV-1a mod palette size) so the assignment stays deterministic
// across runs for the same ID.
func ColorFor(participantID string, insertionIndex int, palette []geom.ColorRGBA) geom.ColorRGBA {
	if len(palette) == 0 {
		return geom.RGB(0x80, 0x80, 0x80)
	}
	if insertionIndex < len(palette) {
		return palette[insertionIndex]
	}
	return palette[hashID(participantID)%uint32(len(palette))]
}

func hashID(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}
