// css.go re-exports stylesheet rule types from internal/css.
// Any changes to internal/css types must be mirrored here.
package stitch

import "github.com/stitchui/stitch/internal/css"

// Decl is a single property/value declaration in a stylesheet rule.
type Decl = css.Decl

// Rule is a selector with an ordered declaration block.
type Rule = css.Rule
