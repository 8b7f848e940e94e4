// Package life implements the Conway's Game of Life automaton on a
// dense boolean grid.
//
// The grid is addressed in sub-cell units (finer than one terminal
// character); the caller decides the dimensions, typically a multiple
// of the renderer's block factors:
//
//   - [Grid]: flat row-major cell buffer with a persistent second
//     buffer for generation swaps
//   - [NextState]: the B3/S23 transition rule as a pure function
//
// # Rule
//
// A live cell with two or three live neighbors survives; a dead cell
// with exactly three live neighbors is born; every other cell is dead
// in the next generation. Neighborhoods are 3x3 Moore neighborhoods
// clamped at the grid edges, never wrapped, so edge cells simply have
// fewer neighbors.
//
// Stepping is fully deterministic. Randomness enters only through
// [Grid.Randomize], which takes the generator as an explicit
// dependency so callers can pin a seed.
package life
