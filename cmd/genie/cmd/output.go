package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ssargent/genie/pkg/api"
	"github.com/ssargent/genie/pkg/config"
	"github.com/ssargent/genie/pkg/genie"
	"github.com/ssargent/genie/pkg/header"
)

// printer renders command results as styled text or JSON
type printer struct {
	w      io.Writer
	format string

	title lipgloss.Style
	label lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
}

func newPrinter(w io.Writer, out config.Output) *printer {
	r := lipgloss.NewRenderer(w)
	p := &printer{
		w:      w,
		format: out.Format,
		title:  r.NewStyle().Bold(true),
		label:  r.NewStyle().Width(12),
		good:   r.NewStyle(),
		bad:    r.NewStyle(),
	}
	if out.Color {
		p.title = p.title.Foreground(lipgloss.Color("1"))
		p.label = p.label.Foreground(lipgloss.Color("6"))
		p.good = p.good.Foreground(lipgloss.Color("2"))
		p.bad = p.bad.Foreground(lipgloss.Color("9"))
	}
	return p
}

func (p *printer) json(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

func (p *printer) row(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render(label+":"), value)
}

// patch prints a code and the patch it describes
func (p *printer) patch(code string, patch genie.Patch) error {
	if p.format == config.FormatJSON {
		return p.json(api.NewPatchResponse(code, patch))
	}

	fmt.Fprintln(p.w, p.title.Render(code))
	p.row("Address", fmt.Sprintf("%04X", patch.Address))
	p.row("Value", fmt.Sprintf("%02X", patch.Value))
	if patch.HasCompare {
		p.row("Compare", fmt.Sprintf("%02X", patch.Compare))
	}
	fmt.Fprintln(p.w, p.good.Render(patch.String()))
	return nil
}

// header prints the cartridge header fields
func (p *printer) header(h *header.Header) error {
	if p.format == config.FormatJSON {
		return p.json(api.NewHeaderResponse(h))
	}

	checksum := p.good.Render(fmt.Sprintf("%02X (ok)", h.HeaderChecksum))
	if !h.ChecksumValid {
		checksum = p.bad.Render(fmt.Sprintf("%02X (mismatch)", h.HeaderChecksum))
	}

	fmt.Fprintln(p.w, p.title.Render(h.Title))
	p.row("System", h.System())
	p.row("Cartridge", h.CartridgeType.String())
	p.row("ROM", h.ROMSize.String())
	p.row("RAM", h.RAMSize.String())
	p.row("Destination", h.Destination())
	p.row("Licensee", h.Licensee)
	p.row("Version", fmt.Sprintf("%d", h.Version))
	p.row("Checksum", checksum)
	p.row("Global", fmt.Sprintf("%04X", h.GlobalChecksum))
	return nil
}
