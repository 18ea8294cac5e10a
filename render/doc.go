// Package render prints labeled grids for a console.
//
// Each interior cell is written as "label,order" with the label right-aligned
// and the order left-aligned in three columns, so a row of a 15×15 grid fits
// a standard terminal. With colour enabled every component id gets a colour
// from a fixed palette and background cells are dimmed; the colour profile
// is detected from the destination writer, so output to files and buffers is
// plain text.
package render
