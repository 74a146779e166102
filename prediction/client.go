package prediction

import (
	"github.com/oomph-ac/wallrun/player"
	"github.com/oomph-ac/wallrun/player/simulation"
	"github.com/oomph-ac/wallrun/utils"
)

// ClientData is the prediction state of the owning client of a player. The client simulates its
// moves immediately, sends them to the server and keeps them until they are acknowledged, so that
// a correction from the server can be replayed on top of.
type ClientData struct {
	mPlayer *player.Player

	time    float32
	lastAck float32

	history *utils.CircularQueue[*SavedMove]
	// pending is the last simulated move, held back so that the next move may be combined with
	// it before either is sent.
	pending *SavedMove
}

// NewClientData creates the client prediction state of the player.
func NewClientData(p *player.Player) *ClientData {
	return &ClientData{
		mPlayer: p,
		time:    p.Clock().Now(),
		history: utils.NewCircularQueue[*SavedMove](p.Settings().Network.MaxSavedMoves),
	}
}

// Time returns the simulation time the next move starts at.
func (c *ClientData) Time() float32 {
	return c.time
}

// Pending returns the move held back for combining, if any.
func (c *ClientData) Pending() *SavedMove {
	return c.pending
}

// UnacknowledgedMoves returns the number of sent moves the server has not acknowledged yet.
func (c *ClientData) UnacknowledgedMoves() int {
	return c.history.Len()
}

// Tick simulates a fresh move of dt seconds with the given input and returns the packets of the
// moves ready to be sent to the server.
func (c *ClientData) Tick(dt float32, input player.InputState) []*ServerMovePacket {
	p := c.mPlayer
	mc := p.Movement()
	s := p.Settings()
	if dt < s.Movement.MinTickTime {
		return nil
	}
	dt = min(dt, s.Network.MaxMoveDeltaTime)

	c.applyInput(input)
	mc.UpdateDerivedFlags()

	move := &SavedMove{}
	move.SetMoveFor(p, c.time, dt, input)

	var out []*ServerMovePacket
	if c.pending != nil {
		if c.pending.CanCombineWith(move, s.Network) {
			p.Dbg.Notify(player.DebugModePrediction, true, "combining move t=%v with pending move t=%v", move.Timestamp, c.pending.Timestamp)
			move.CombineWith(c.pending)
			mc.Restore(move.Start)
		} else {
			out = append(out, c.send(c.pending))
		}
		c.pending = nil
	}

	move.PrepMoveFor(p)
	simulation.PerformMovement(p, move.DeltaTime)
	move.PostUpdate(p)

	c.time += dt
	c.setClock(c.time)

	if s.Network.CombineMoves && !move.CompressedFlags().Has(player.FlagJumpPressed) {
		c.pending = move
	} else {
		out = append(out, c.send(move))
	}
	return out
}

// Flush sends the pending move, if any.
func (c *ClientData) Flush() *ServerMovePacket {
	if c.pending == nil {
		return nil
	}
	pk := c.send(c.pending)
	c.pending = nil
	return pk
}

// HandleAck forgets every saved move up to and including timestamp.
func (c *ClientData) HandleAck(timestamp float32) {
	c.lastAck = max(c.lastAck, timestamp)
	n := c.history.PopWhile(func(m *SavedMove) bool {
		return m.Timestamp <= timestamp
	})
	c.mPlayer.Dbg.Notify(player.DebugModePrediction, n > 0, "acknowledged %d moves up to t=%v", n, timestamp)
}

// HandleAdjustment rewinds the movement component to the authoritative state of the server and
// replays every move the server has not processed yet.
func (c *ClientData) HandleAdjustment(pk *ClientAdjustmentPacket) {
	p := c.mPlayer
	if pk.Timestamp < c.lastAck {
		p.Dbg.Notify(player.DebugModePrediction, true, "ignoring stale adjustment t=%v (last ack t=%v)", pk.Timestamp, c.lastAck)
		return
	}
	c.HandleAck(pk.Timestamp)

	mc := p.Movement()
	mc.Restore(pk.State)

	replayed := 0
	for _, move := range c.history.Iter() {
		c.replay(move)
		replayed++
	}
	if c.pending != nil {
		c.replay(c.pending)
		replayed++
	}
	c.setClock(c.time)

	p.Log().Debugf("%s adjusted to %v at t=%v, replayed %d moves (now at %v)", p.Name(), pk.State.Pos, pk.Timestamp, replayed, mc.Pos())
}

// replay simulates a saved move again on top of the current state. The flags are restored from
// the move rather than derived again.
func (c *ClientData) replay(move *SavedMove) {
	move.PrepMoveFor(c.mPlayer)
	move.Start = c.mPlayer.Movement().Snapshot()
	simulation.PerformMovement(c.mPlayer, move.DeltaTime)
	move.PostUpdate(c.mPlayer)
}

func (c *ClientData) send(move *SavedMove) *ServerMovePacket {
	if oldest, ok := c.history.Peek(); ok && c.history.Full() {
		c.mPlayer.Log().Warnf("%s saved move buffer full, dropping move t=%v", c.mPlayer.Name(), oldest.Timestamp)
	}
	if err := c.history.Append(move); err != nil {
		c.mPlayer.Log().Warnf("%s unable to save move t=%v: %v", c.mPlayer.Name(), move.Timestamp, err)
	}
	return move.packet()
}

func (c *ClientData) applyInput(input player.InputState) {
	p := c.mPlayer
	mc := p.Movement()
	p.SetInput(input)
	mc.SetYaw(input.Yaw)
	mc.SetAcceleration(input.AccelerationDirection().Mul(p.Settings().Movement.MaxAcceleration))
	mc.SetPressedJump(input.Jump)
	mc.SetWantsToCrouch(input.Crouch)
	mc.SetSprinting(input.Sprint)
}

func (c *ClientData) setClock(t float32) {
	if clock, ok := c.mPlayer.Clock().(timeSetter); ok {
		clock.Set(t)
	}
}
