// Package render draws detection overlays onto a copy of the source
// frame and writes the annotated result to disk.
//
// Every detection gets a bounding-box rectangle in its class color,
// with line thickness scaled by severity, and a "<class>: <conf>%"
// label above the box. The source image is never modified; Annotate
// always draws on a fresh copy.
package render
