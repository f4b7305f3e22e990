package level

import "math"

// Snapshot contains the complete dynamic level state for determinism
// checks and logging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Status      string
	FinishDelay int
	Width       int
	Height      int

	// Actor state (each actor is 7 values: Kind, PosX, PosY, SizeX, SizeY,
	// SpeedX, SpeedY)
	ActorCount int
	ActorData  []float64
}

// Snapshot returns the current level state as a Snapshot.
func (l *Level) Snapshot() Snapshot {
	data := make([]float64, 0, len(l.actors)*7)
	for _, a := range l.actors {
		pos, size, speed := a.Pos(), a.Size(), a.Speed()
		data = append(data,
			float64(a.Kind()),
			pos.X, pos.Y,
			size.X, size.Y,
			speed.X, speed.Y,
		)
	}

	return Snapshot{
		Status:      l.status.String(),
		FinishDelay: l.finishDelay,
		Width:       l.width,
		Height:      l.height,
		ActorCount:  len(l.actors),
		ActorData:   data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	var h uint64
	for _, c := range []byte(snap.Status) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.FinishDelay) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Width)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorCount)  //#nosec G115 -- hash computation

	for _, v := range snap.ActorData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
