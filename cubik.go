// Package cubik implements the interaction engine of a virtual twisty
// cube: face selection by keypress, collision-driven layer membership,
// quarter-turn rotation through a pivot node, and an automated shuffle
// scheduler.
//
// # Quick start
//
// Create an engine, feed it keystrokes, and drive its clock from a
// frame loop:
//
//	engine, err := cubik.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine.OnMove(func(m cubik.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//
//	engine.Attempt('t')                      // rotate the top layer
//	engine.Advance(16 * time.Millisecond)    // once per frame
//
// A lowercase face key turns the layer one way, the uppercase form
// the other. Digits 1-7 select camera presets and space starts a
// shuffle; unknown keys are ignored and keys pressed while a rotation
// is animating are dropped, never queued.
//
// # Faces
//
// Nine faces are selectable: the six outer layers (t, d, l, r, f, b)
// and the three center slices (v, h, c). An outer layer carries nine
// cubies, a center slice eight; a rotation triggers only when a
// collision traversal finds the full member count.
//
// # Shuffling
//
// A shuffle plays 30-60 random moves through the same dispatch path
// with animation suppressed. Manual input is disarmed until the
// sequence finishes. Seed the engine for reproducible sequences:
//
//	engine, _ := cubik.New(cubik.WithRandSeed(42))
//	engine.StartShuffle()
//	engine.Advance(time.Minute) // drain the whole sequence
//
// # Determinism
//
// The engine owns no goroutines and reads no wall clock except for
// move timestamps. All timing flows through Advance, so tests and
// replays are exactly reproducible.
package cubik
