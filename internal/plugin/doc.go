// Package plugin is the discovery and resolution engine for installed
// plugins. It scans the npm-style installation root for packages carrying
// an embedded plugin manifest, merges the global lock record with
// project-local overrides into the active plugin set, and expands each
// active plugin's manifest into the tool, hook, and command module paths
// that exist on disk.
//
// Every query re-reads persistent state from scratch; nothing is cached
// between calls, so edits to the lock record, override files, or the
// installation directory are observed on the next query.
package plugin
