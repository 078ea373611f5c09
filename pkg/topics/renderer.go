package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// Renderer turns raw topic content into terminal output. format is the
// topic's file extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through.
type GlamourRenderer struct {
	// Style is a glamour style name such as "dark", "light" or "notty", or
	// a path to a style file. Empty or "auto" detects it from the terminal.
	Style string
	// Width wraps lines; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer creates a renderer that detects its style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	default:
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.Debug().Err(err).Msg("Falling back to plain topic rendering")
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		log.Debug().Err(err).Msg("Falling back to plain topic rendering")
		return content
	}
	return out
}
