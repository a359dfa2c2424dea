// Package stitch provides a declarative layout and styling DSL for Go.
//
// Users describe a UI as an immutable element tree (rows, columns, grids,
// text layouts, nearby-positioned overlays) decorated with typed attributes.
// The renderer compiles that tree into markup with class references plus a
// deduplicated stylesheet, ready to hand to any io.Writer.
package stitch
