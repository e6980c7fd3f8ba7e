package sim

// Integrate advances every moving entity by one tick of its velocity.
// Walls never move.
func Integrate(w *World) {
	if w.Player != nil {
		w.Player.Pos = w.Player.Pos.Add(w.Player.Vel)
	}
	if w.Opponent != nil {
		w.Opponent.Pos = w.Opponent.Pos.Add(w.Opponent.Vel)
	}
	if w.Ball != nil {
		w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Vel)
	}
}
