// Package style describes how canvas content looks: colors, text
// attributes, borders, padding, and alignment.
//
// Styles are plain values. The fluent builder returns modified copies,
// so a Text can be assembled in one expression:
//
//	style.New("Paused").Bold().Italic().Border(style.White).Padding(1)
//
// Terminal-facing conversion of these values lives in the canvas
// package; nothing here writes escape sequences.
package style
