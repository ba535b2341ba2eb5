// Package input turns decoded terminal events into navigation events.
//
// The viewer core never inspects raw key codes. The backend reports keys,
// a Keymap maps them to one of a small set of navigation kinds, and the
// cursor reacts to those kinds only.
package input
