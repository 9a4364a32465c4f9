// Package history persists recently used inputs and saved notes. A Store
// keeps ordered string lists under a key; InputHistory and NoteHistory
// build the bounded, searchable histories the commands use on top of it.
package history
