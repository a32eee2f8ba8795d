// Package core provides the small set of types shared between games and
// the programs that drive them. It has no external dependencies so that
// game logic stays pure and testable.
package core
