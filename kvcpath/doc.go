// Package kvcpath breaks key-value coding (KVC) style paths into components.
//
// A KVC path addresses a node inside a nested property-list-like document:
//   - "a.b"      - dictionary key "b" under key "a"
//   - "a[3]"     - element 3 of the array under key "a"
//   - "a@count"  - collection operator applied to "a"
//   - "a\.b"     - a single key containing a literal dot
//
// # Usage
//
//	cs := kvcpath.Split("root.items[3].name")
//	// [Key "root", Key "items", Index "3", Key "name"]
//
//	for _, c := range cs {
//	    switch c.Kind {
//	    case kvcpath.KeyKind:
//	        // dictionary lookup, or an operator if c.Operator
//	    case kvcpath.IndexKind:
//	        // positional access; c.Text is not validated
//	    }
//	}
//
//	p := cs.String() // "root.items[3].name"
//
// Split never fails. Dangling escapes, unterminated brackets and empty
// segments all have well defined results so that a path being edited by a
// human can always be shown.
//
// # Related Packages
//
//   - github.com/signadot/plistkvc/ir - walks and mutates documents with components
//   - github.com/signadot/plistkvc/edit - JSON Patch mutation addressed by KVC paths
package kvcpath
