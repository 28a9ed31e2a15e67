// Package viz renders the citysense dashboard in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Dashboard]: menu of six city instruments, one expandable at a time
//   - [Canvas]: Braille-based pixel canvas with a per-cell color layer
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	j/k   - Move between instruments
//	Enter - Open the selected instrument
//	Esc   - Close the open instrument
//	Space - Pause/Resume the open simulation
//	T     - Cycle color themes
//	Q     - Quit
package viz
