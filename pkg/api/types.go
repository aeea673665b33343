package api

import (
	"fmt"

	"github.com/ssargent/genie/pkg/genie"
	"github.com/ssargent/genie/pkg/header"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // Empty disables authentication
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// EncodeRequest is the body of POST /api/v1/encode. Shorthand takes
// precedence over the individual fields when set.
type EncodeRequest struct {
	Shorthand string `json:"shorthand,omitempty"`
	Address   string `json:"address,omitempty"`
	Value     string `json:"value,omitempty"`
	Compare   string `json:"compare,omitempty"`
}

// PatchResponse describes a decoded or freshly encoded code
type PatchResponse struct {
	Code        string `json:"code"`
	Value       string `json:"value"`
	Address     string `json:"address"`
	Compare     string `json:"compare,omitempty"`
	Description string `json:"description"`
}

// NewPatchResponse renders a patch with its canonical code
func NewPatchResponse(code string, p genie.Patch) PatchResponse {
	resp := PatchResponse{
		Code:        code,
		Value:       fmt.Sprintf("%02X", p.Value),
		Address:     fmt.Sprintf("%04X", p.Address),
		Description: p.String(),
	}
	if p.HasCompare {
		resp.Compare = fmt.Sprintf("%02X", p.Compare)
	}
	return resp
}

// HeaderResponse is a parsed cartridge header plus derived descriptions
type HeaderResponse struct {
	*header.Header
	System      string `json:"system"`
	Destination string `json:"destination"`
}

// NewHeaderResponse wraps a parsed header
func NewHeaderResponse(h *header.Header) HeaderResponse {
	return HeaderResponse{
		Header:      h,
		System:      h.System(),
		Destination: h.Destination(),
	}
}
