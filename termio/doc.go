// Package termio owns the terminal: raw mode, the alternate screen,
// cursor visibility, and restoring all of it on the way out. Restore
// runs on the panic path too, so a crashing app never strands the user
// in a raw terminal.
//
// It also provides capability probes (is this a TTY, is the grid big
// enough, how much color does it speak) with a checker interface, so
// callers can fail early with a useful message instead of rendering
// garbage.
package termio
