package empty

import "sync"

// DoNotCopy marks a struct which must not be copied after first use.
// The zero-width mutex array costs nothing at run time but makes
// `go vet -copylocks` report such copies.
type DoNotCopy [0]sync.Mutex
