package astro

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// Snapshot is a flat copy of the observable world state, used by
// determinism tests to compare two runs tick by tick.
type Snapshot struct {
	Score    int
	Level    int
	GameOver bool

	Player Actor
	Shots  []Actor
	Rocks  []Actor
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Score:    w.score,
		Level:    w.level,
		GameOver: w.gameOver,
		Player:   w.player,
		Shots:    make([]Actor, len(w.shots)),
		Rocks:    make([]Actor, len(w.rocks)),
	}
	copy(snap.Shots, w.shots)
	copy(snap.Rocks, w.rocks)
	return snap
}

// Hash returns a digest of the snapshot. Two runs with the same seed
// and input sequence must produce equal hashes at every tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		h.Write(buf)
	}
	writeVec := func(v core.Vec2) {
		writeFloat(v.X)
		writeFloat(v.Y)
	}
	writeActor := func(a Actor) {
		writeInt(int(a.Kind))
		writeVec(a.Pos)
		writeFloat(a.Facing)
		writeVec(a.Velocity)
		writeFloat(a.Life)
	}

	writeInt(s.Score)
	writeInt(s.Level)
	if s.GameOver {
		writeInt(1)
	} else {
		writeInt(0)
	}

	writeActor(s.Player)
	writeInt(len(s.Shots))
	for _, a := range s.Shots {
		writeActor(a)
	}
	writeInt(len(s.Rocks))
	for _, a := range s.Rocks {
		writeActor(a)
	}

	return h.Sum64()
}
