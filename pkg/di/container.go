// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/binkit/pkg/api"     //nolint:depguard
	"github.com/ssargent/binkit/pkg/storage" //nolint:depguard
)

// StoreOpener opens the vector store under a data directory.
type StoreOpener func(path string) (*storage.VectorStore, error)

// Container holds all the dependencies for the application
type Container struct {
	serverFactory api.ServerFactory
	storeOpener   StoreOpener
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		serverFactory: api.NewServerFactory(),
		storeOpener:   storage.Open,
	}
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// GetStoreOpener returns the vector store opener
func (c *Container) GetStoreOpener() StoreOpener {
	return c.storeOpener
}

// SetStoreOpener allows overriding the vector store opener (for testing)
func (c *Container) SetStoreOpener(opener StoreOpener) {
	c.storeOpener = opener
}
