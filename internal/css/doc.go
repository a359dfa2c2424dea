// Package css models stylesheet rules: declarations, selector-keyed rules,
// deterministic serialization, and an ordered deduplicating sheet.
package css
