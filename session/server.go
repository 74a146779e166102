package session

import (
	"context"

	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/prediction"
)

// ServerSession serves the authoritative side of a player's connection: it simulates every move
// the client sends and answers with an acknowledgement or a correction.
type ServerSession struct {
	conn    PacketConn
	mPlayer *player.Player
	data    *prediction.ServerData
}

// NewServerSession creates a server session for the player over conn.
func NewServerSession(conn PacketConn, p *player.Player) *ServerSession {
	return &ServerSession{conn: conn, mPlayer: p, data: prediction.NewServerData(p)}
}

// Data returns the authoritative prediction state of the session.
func (s *ServerSession) Data() *prediction.ServerData {
	return s.data
}

// Serve handles packets until the connection is closed or ctx is cancelled. Cancelling ctx closes
// the connection.
func (s *ServerSession) Serve(ctx context.Context) (err error) {
	defer recoverPanic(s.mPlayer, "server", &err)
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.Close()
	})
	defer stop()

	for {
		b, err := s.conn.ReadPacket()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		pk, err := prediction.DecodePacket(b)
		if err != nil {
			s.mPlayer.Log().Warnf("%s sent an invalid packet: %v", s.mPlayer.Name(), err)
			continue
		}
		move, ok := pk.(*prediction.ServerMovePacket)
		if !ok {
			s.mPlayer.Log().Warnf("%s sent unexpected packet %T", s.mPlayer.Name(), pk)
			continue
		}

		resp := s.data.ProcessMove(move)
		if resp == nil {
			continue
		}
		if _, err := s.conn.Write(prediction.EncodePacket(resp)); err != nil {
			return err
		}
	}
}
