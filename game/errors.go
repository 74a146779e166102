package game

const (
	ErrorInternalMissingMovementComponent = "movement component required to simulate movement"
	ErrorInternalMissingWorld             = "world query required to simulate movement"
	ErrorInternalUnknownPacket            = "unknown packet ID %d"
	ErrorInternalPacketDecode             = "unable to decode packet %T: %v"
	ErrorInternalUnsortedCurve            = "curve keys must be sorted by time (key %d at %v after %v)"
)
