// Package memory persists the most recently selected blueprint so subsequent
// runs can skip interactive selection. The record is deliberately tiny: a
// single last-selected filename, read and overwritten wholesale.
package memory

// Store is the persistence interface for the selection memory. It is an
// explicit dependency of the selector so tests can substitute an in-memory
// implementation.
type Store interface {
	// Last returns the remembered blueprint name. ok is false when no
	// memory exists yet, which is a normal condition, not an error.
	Last() (name string, ok bool, err error)

	// SetLast overwrites the memory with the given blueprint name.
	SetLast(name string) error
}
