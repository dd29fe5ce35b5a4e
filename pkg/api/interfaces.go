// Package api provides interfaces for dependency injection
package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/binkit/pkg/storage"
)

// VectorStore defines the test-vector operations the API needs
type VectorStore interface {
	Put(v storage.Vector) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) (storage.Vector, error)
	List() ([]storage.Vector, error)
	Verify(id ksuid.KSUID) (storage.Vector, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until the listener fails. store may be nil,
	// which disables the vector routes.
	StartServer(store VectorStore, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
