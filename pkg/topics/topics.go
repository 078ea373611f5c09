// Package topics adds help topics to a cobra command tree. Topics are
// markdown or text files read from an fs.FS; `help <topic>` renders them and
// `help topics` lists them.
package topics

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/arthur-debert/sigslot/pkg/errors"
	"github.com/arthur-debert/sigslot/pkg/registry"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var builtin embed.FS

const optionPrefix = "option-"

// Topic is one help page
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Format returns the file extension used to pick a rendering
func (t Topic) Format() string {
	return path.Ext(t.Path)
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions read as topics. Defaults to
	// .md and .txt.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics of one command tree
type Manager struct {
	topics     registry.Registry[Topic]
	extensions []string
	renderer   Renderer
}

// Load reads every topic file found in fsys. Two files with the same base
// name are an error.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     registry.New[Topic](),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if d.IsDir() || !slices.Contains(m.extensions, ext) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		return m.topics.Register(name, Topic{Name: name, Path: p, Content: string(content)})
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
	}
	return m, nil
}

// Builtin loads the topics shipped with sigslot
func Builtin(opts Options) (*Manager, error) {
	docs, err := fs.Sub(builtin, "docs")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to open builtin topics")
	}
	return Load(docs, opts)
}

// Get finds a topic by name. Flag-style names such as --plain also match a
// topic called option-plain.
func (m *Manager) Get(name string) (Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, err := m.topics.Get(name); err == nil {
		return t, true
	}
	t, err := m.topics.Get(optionPrefix + name)
	return t, err == nil
}

// Names returns the topic names sorted alphabetically
func (m *Manager) Names() []string {
	names := m.topics.List()
	slices.Sort(names)
	return names
}

// Render formats a topic with the configured renderer
func (m *Manager) Render(t Topic) string {
	return m.renderer.Render(t.Content, t.Format())
}

// WriteIndex lists the topics, option topics last
func (m *Manager) WriteIndex(w io.Writer, program string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, optionPrefix); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Install replaces the help command of root with one that also knows about
// topics. Renderer is resolved when help runs so flags can decide it.
func (m *Manager) Install(root *cobra.Command, renderer func(cmd *cobra.Command) Renderer) {
	defaultHelp := root.HelpFunc()

	show := func(cmd *cobra.Command, name string) bool {
		t, ok := m.Get(name)
		if !ok {
			return false
		}
		if renderer != nil {
			m.renderer = renderer(cmd)
		}
		fmt.Fprint(cmd.OutOrStdout(), m.Render(t))
		return true
	}

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		// Help works without a valid config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			switch {
			case len(args) == 0:
				defaultHelp(root, args)
			case args[0] == "topics":
				m.WriteIndex(cmd.OutOrStdout(), root.Name())
			case show(cmd, args[0]):
			default:
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					target = root
				}
				defaultHelp(target, args)
			}
		},
	}

	root.SetHelpCommand(helpCmd)
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 && show(cmd, args[0]) {
			return
		}
		defaultHelp(cmd, args)
	})
}
