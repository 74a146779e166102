package prediction

import (
	"bytes"

	"github.com/oomph-ac/wallrun/internal"
	"github.com/oomph-ac/wallrun/player"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/zeebo/xxh3"
)

// Checksum returns the checksum of the replicated part of a snapshot: the part that both sides
// of the connection compute from the same moves.
func Checksum(s player.MovementSnapshot) uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)

	buf.Reset()
	w := protocol.NewWriter(buf, 0)
	w.Vec3(&s.Pos)
	w.Vec3(&s.Vel)
	w.Uint8((*uint8)(&s.Mode))
	w.Uint8((*uint8)(&s.CustomMode))
	if s.IsWallRunning() {
		marshalWallRun(w, &s.WallRun)
	}
	jumpCount := int32(s.JumpCount)
	w.Varint32(&jumpCount)
	return xxh3.Hash(buf.Bytes())
}
