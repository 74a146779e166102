package session

import (
	"context"

	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/prediction"
	"github.com/sasha-s/go-deadlock"
)

// ClientSession drives the predicting side of a player's connection. Tick is called by the game
// loop while Listen runs on its own goroutine, so access to the prediction state is serialised.
type ClientSession struct {
	conn    PacketConn
	mPlayer *player.Player

	mu   deadlock.Mutex
	data *prediction.ClientData
}

// NewClientSession creates a client session for the player over conn.
func NewClientSession(conn PacketConn, p *player.Player) *ClientSession {
	return &ClientSession{conn: conn, mPlayer: p, data: prediction.NewClientData(p)}
}

// Tick predicts a move of dt seconds with the given input and sends the moves that are ready.
func (s *ClientSession) Tick(dt float32, input player.InputState) error {
	s.mu.Lock()
	pks := s.data.Tick(dt, input)
	s.mu.Unlock()
	return s.send(pks...)
}

// Flush sends the move held back for combining, if any.
func (s *ClientSession) Flush() error {
	s.mu.Lock()
	pk := s.data.Flush()
	s.mu.Unlock()
	if pk == nil {
		return nil
	}
	return s.send(pk)
}

// UnacknowledgedMoves returns the number of sent moves the server has not acknowledged yet.
func (s *ClientSession) UnacknowledgedMoves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.UnacknowledgedMoves()
}

// Snapshot returns the current predicted movement state.
func (s *ClientSession) Snapshot() player.MovementSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mPlayer.Movement().Snapshot()
}

// Listen applies the acknowledgements and corrections sent by the server until the connection is
// closed or ctx is cancelled. Cancelling ctx closes the connection.
func (s *ClientSession) Listen(ctx context.Context) (err error) {
	defer recoverPanic(s.mPlayer, "client", &err)
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
			s.mPlayer.Log().Warnf("received an invalid packet: %v", err)
			continue
		}

		s.mu.Lock()
		switch pk := pk.(type) {
		case *prediction.MoveAckPacket:
			s.data.HandleAck(pk.Timestamp)
		case *prediction.ClientAdjustmentPacket:
			s.data.HandleAdjustment(pk)
		default:
			s.mPlayer.Log().Warnf("received unexpected packet %T", pk)
		}
		s.mu.Unlock()
	}
}

func (s *ClientSession) send(pks ...*prediction.ServerMovePacket) error {
	for _, pk := range pks {
		if _, err := s.conn.Write(prediction.EncodePacket(pk)); err != nil {
			return err
		}
	}
	return nil
}
