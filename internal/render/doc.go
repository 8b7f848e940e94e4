// Package render turns a life grid into terminal frames using Braille
// sub-character addressing.
//
// Every terminal character cell covers a [BlockWidth] x [BlockHeight]
// block of grid sub-cells, packed into the top six dots of one Braille
// glyph:
//
//   - [Glyph]: block mask to Braille character lookup
//   - [Surface]: the capability set a render target must expose
//   - [Frame]: an in-memory Surface with a pending/shown buffer pair
//   - [Draw]: full-frame render of a grid onto a Surface
//   - [PaintBlock]: set one terminal cell's sub-cell block alive
package render
