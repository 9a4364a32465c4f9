// Package processor contains the logic behind the eudicnotes commands. It
// renders and recognizes notes, keeps the note and input histories, reads
// and writes the clipboard, and exports notes to Anki. This package serves
// as the coordinator between all other components.
package processor
