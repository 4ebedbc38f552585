// Package hashes is a name-keyed registry over the digest packages in this
// module, for callers that select an algorithm at runtime.
package hashes

import (
	"fmt"
	"hash"
	"sort"
)

var registry = map[string]func() hash.Hash{}

// Register makes a constructor available under name. Later registrations
// with the same name win.
func Register(name string, fn func() hash.Hash) { registry[name] = fn }

// New returns a fresh hash.Hash for the named algorithm.
func New(name string) (hash.Hash, error) {
	if fn, ok := registry[name]; ok {
		return fn(), nil
	}
	return nil, fmt.Errorf("unknown algorithm: %s", name)
}

// List returns the registered algorithm names, sorted.
func List() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Size returns the digest size in bytes for the named algorithm, or 0 if it
// is not registered.
func Size(name string) int {
	if fn, ok := registry[name]; ok {
		return fn().Size()
	}
	return 0
}

// BlockSize returns the block size in bytes for the named algorithm, or 0 if
// it is not registered.
func BlockSize(name string) int {
	if fn, ok := registry[name]; ok {
		return fn().BlockSize()
	}
	return 0
}
