// Package note defines the structured form of a study note and the plain,
// section-labeled text it is composed to. It contains the recognizer that
// parses composed text back into fields, splitting of clipboard text that
// holds several notes, and tag list normalisation.
package note
