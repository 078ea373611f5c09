package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arthur-debert/sigslot/pkg/config"
	"github.com/arthur-debert/sigslot/pkg/demo"
	"github.com/arthur-debert/sigslot/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Renderer writes scenario output to a writer
type Renderer struct {
	w       io.Writer
	format  string
	color   bool
	heading lipgloss.Style
	muted   lipgloss.Style
}

// NewRenderer creates a Renderer for w using the output settings
func NewRenderer(w io.Writer, opts config.Output) *Renderer {
	log := logging.GetLogger("output.Renderer")

	color := ColorEnabled(w, opts.Color)
	lr := lipgloss.NewRenderer(w)
	if color {
		if lr.ColorProfile() == termenv.Ascii {
			lr.SetColorProfile(termenv.ANSI)
		}
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	log.Debug().
		Bool("color", color).
		Str("format", opts.Format).
		Str("colorProfile", fmt.Sprintf("%v", lr.ColorProfile())).
		Msg("Creating renderer")

	return &Renderer{
		w:      w,
		format: opts.Format,
		color:  color,
		heading: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1F5FAF", Dark: "#7FB4FF"}),
		muted: lr.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#A8A8A8"}),
	}
}

// ColorEnabled resolves a color mode, "auto" being decided by the writer
// and NO_COLOR
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Color reports whether the renderer emits styled output
func (r *Renderer) Color() bool {
	return r.color
}

// List writes the catalog of scenarios
func (r *Renderer) List(scenarios []demo.Scenario) error {
	if r.format == config.FormatPlain {
		for _, s := range scenarios {
			if _, err := fmt.Fprintf(r.w, "%s\t%s\n", s.Name, s.Description); err != nil {
				return err
			}
		}
		return nil
	}

	data := pterm.TableData{{"Scenario", "Description"}}
	for _, s := range scenarios {
		data = append(data, []string{s.Name, s.Description})
	}
	return r.table(data)
}

// Results writes the steps of each result
func (r *Renderer) Results(results []*demo.Result) error {
	for _, res := range results {
		if err := r.result(res); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) result(res *demo.Result) error {
	if r.format == config.FormatPlain {
		for _, step := range res.Steps {
			if _, err := fmt.Fprintf(r.w, "%s: %s -> %s (slots=%d)\n", res.Scenario, step.Action, step.Outcome, step.Slots); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := fmt.Fprintln(r.w, r.heading.Render(res.Scenario)); err != nil {
		return err
	}
	data := pterm.TableData{{"Action", "Outcome", "Slots"}}
	for _, step := range res.Steps {
		data = append(data, []string{step.Action, step.Outcome, strconv.Itoa(step.Slots)})
	}
	if err := r.table(data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, r.muted.Render(fmt.Sprintf("%d steps", len(res.Steps))))
	return err
}

func (r *Renderer) table(data pterm.TableData) error {
	if r.color {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(r.w, out)
	return err
}
