// Package home resolves the filesystem locations of persisted state: the
// ~/.axle directory, the plugin installation root, the global lock record,
// and the project-local override candidates. Every location honors an
// AXLE_* environment override so tests and alternate installs can relocate
// state without touching the real home directory.
package home
