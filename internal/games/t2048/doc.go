// Package t2048 implements the 2048 board-transition engine: tiles on a
// square board are tilted toward one side, sliding and merging, and the
// game ends when the winning tile appears or no move is left.
//
// The engine (Board, Model and the terminal-state queries) is pure and
// synchronous. Game wraps it with a seeded tile source and the classic,
// campaign and endless modes.
package t2048
