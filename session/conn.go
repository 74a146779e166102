package session

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/oomph-ac/wallrun/oerror"
	"github.com/sasha-s/go-deadlock"
)

// maxFrameSize is the largest packet a StreamConn accepts.
const maxFrameSize = 1 << 16

// PacketConn is a connection exchanging whole packets. *raknet.Conn implements it.
type PacketConn interface {
	// ReadPacket blocks until a whole packet is received.
	ReadPacket() ([]byte, error)
	// Write sends b as a single packet.
	Write(b []byte) (int, error)
	Close() error
}

// StreamConn adapts a byte stream, such as a net.Conn or a QUIC stream, to a PacketConn by
// prefixing every packet with its length as a little endian uint32.
type StreamConn struct {
	w      io.Writer
	r      *bufio.Reader
	closer func() error
	mu     deadlock.Mutex
}

// NewStreamConn wraps conn.
func NewStreamConn(conn io.ReadWriteCloser) *StreamConn {
	return newStreamConn(conn, conn.Close)
}

func newStreamConn(rw io.ReadWriter, closer func() error) *StreamConn {
	return &StreamConn{w: rw, r: bufio.NewReader(rw), closer: closer}
}

// ReadPacket ...
func (c *StreamConn) ReadPacket() ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(c.r, header[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(header[:])
	if n > maxFrameSize {
		return nil, oerror.New("packet of %d bytes exceeds the maximum of %d", n, maxFrameSize)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(c.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Write ...
func (c *StreamConn) Write(b []byte) (int, error) {
	if len(b) > maxFrameSize {
		return 0, oerror.New("packet of %d bytes exceeds the maximum of %d", len(b), maxFrameSize)
	}
	frame := make([]byte, 4+len(b))
	binary.LittleEndian.PutUint32(frame, uint32(len(b)))
	copy(frame[4:], b)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.w.Write(frame); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Close ...
func (c *StreamConn) Close() error {
	return c.closer()
}
