// Package engine runs the application loop: it opens a terminal
// session, paces frames at a fixed interval, dispatches keyboard and
// resize events, and renders the canvas after every update.
//
// An application implements App and hands itself to Run:
//
//	type game struct{}
//
//	func (g *game) Init(s *engine.State) error   { return nil }
//	func (g *game) Update(s *engine.State) error { return nil }
//	func (g *game) OnKey(s *engine.State, ev input.KeyEvent) {}
//
//	func main() {
//	    if err := engine.Run(&game{}); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// The loop exits when the app calls State.Exit, or on q, Escape, or
// Ctrl+C.
package engine
