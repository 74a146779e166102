package prediction

import (
	"bytes"

	"github.com/oomph-ac/wallrun/game"
	"github.com/oomph-ac/wallrun/internal"
	"github.com/oomph-ac/wallrun/oerror"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// EncodePacket encodes the packet with its header. The returned slice is owned by the caller.
func EncodePacket(pk packet.Packet) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)

	buf.Reset()

	header := &packet.Header{}
	header.PacketID = pk.ID()
	header.Write(buf)

	pk.Marshal(protocol.NewWriter(buf, 0))
	return bytes.Clone(buf.Bytes())
}

// DecodePacket decodes a packet previously encoded with EncodePacket.
func DecodePacket(b []byte) (pk packet.Packet, err error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)

	buf.Reset()
	buf.Write(b)

	h := &packet.Header{}
	if err := h.Read(buf); err != nil {
		return nil, oerror.New("error reading packet header: %v", err)
	}

	pkFunc, ok := packetPool[h.PacketID]
	if !ok {
		return nil, oerror.New(game.ErrorInternalUnknownPacket, h.PacketID)
	}

	pk = pkFunc()
	// The protocol reader panics on malformed or truncated input.
	defer func() {
		if r := recover(); r != nil {
			pk, err = nil, oerror.New(game.ErrorInternalPacketDecode, pk, r)
		}
	}()
	pk.Marshal(protocol.NewReader(buf, 0, false))
	return pk, nil
}
