// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/ssargent/genie/pkg/genie"
	"go.uber.org/zap"
)

// PatchCodec is the codec surface the server depends on
type PatchCodec interface {
	Decode(text string) (genie.Patch, error)
	Encode(p genie.Patch) string
	EncodeFields(address, value, compare string) (string, error)
	EncodeShorthand(text string) (string, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves until ctx is cancelled or the listener fails
	StartServer(ctx context.Context, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter(codec PatchCodec, logger *zap.Logger) ServerStarter
}
