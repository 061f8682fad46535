// Package naming derives conversion targets and the text references that
// point at them.
//
// Types:
//   - Pair (PNG, JPEG) for one successful conversion
//   - Mapping, the immutable old-reference -> new-reference table
//   - CollisionDetector for targets claimed by more than one PNG
//
// Functions:
//   - JPEGPath(png) -> sibling .jpg path
//   - ReferenceForm(root, path) -> forward-slash path relative to root
//   - BuildMapping(root, pairs, stripPrefixes) -> Mapping
package naming
