// Package memdb keeps the fund flow graph in process memory. Nothing is persisted.
package memdb

// DefaultMemSize is the initial capacity of the adjacency maps.
const DefaultMemSize = 1024

type config struct {
	memSize int
}

type Option func(*config)

// WithMemSize presizes the graph maps for roughly memSize nodes. Negative values are ignored.
func WithMemSize(memSize int) Option {
	return func(c *config) {
		if memSize >= 0 {
			c.memSize = memSize
		}
	}
}
