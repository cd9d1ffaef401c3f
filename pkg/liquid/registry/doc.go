// Package registry provides a generic thread-safe registry for values
// indexed by key.
//
// Registry is designed for read-heavy workloads using sync.RWMutex.
// The engine uses it to dispatch tag names to their parsers, but it
// supports any comparable key type and any value type.
//
// # Basic Usage
//
//	r := registry.New[string, int]()
//	r.Register("one", 1)
//
//	value, ok := r.Get("one")
//	if ok {
//	    fmt.Println(value)
//	}
package registry
