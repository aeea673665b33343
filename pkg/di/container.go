// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/genie/pkg/api" //nolint:depguard
	"github.com/ssargent/genie/pkg/genie"
)

// Container holds all the dependencies for the application
type Container struct {
	codec         api.PatchCodec
	serverFactory api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		codec:         genie.NewCodec(),
		serverFactory: api.NewServerFactory(),
	}
}

// GetCodec returns the code codec
func (c *Container) GetCodec() api.PatchCodec {
	return c.codec
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
