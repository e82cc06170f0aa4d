// Package scaffold generates new plugin packages from embedded templates.
// It powers the "axle create" command, producing a package.json with the
// manifest under the axle vendor key, a base tools module, and one example
// feature.
package scaffold
