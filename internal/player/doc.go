// Package player replays a transcript into a display region.
//
// A [Player] is a small state machine bound to one region:
//
//	Idle --Start--> Playing(cursor) --Advance (last line)--> Done
//
// Each line is appended after its own delay, measured from the append of
// the line before it. [Player.Start] is the one-shot guard: only the first
// caller moves the player out of Idle, so repeated visibility triggers never
// replay the transcript.
//
// # Drivers
//
// Two drivers step the machine:
//
//   - [Player.Play] and [Player.Trigger] run one timer per line on a goroutine
//   - [Player.Cmd] and [Player.Update] schedule lines as Bubble Tea ticks
//
// Both begin with Start, so at most one driver ever plays a given player.
package player
