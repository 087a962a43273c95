// Package store demonstrates receiver-less members: a package-level
// constructor attached to the interface with --static, dispatched through
// the process-wide static-mock table.
package store

//go:generate go run github.com/scenariotest/scenario/mockgen Store --static Open

// Store is a keyed string store.
type Store interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// Open opens the store backing file at path.
func Open(path string) Store {
	return nil
}
