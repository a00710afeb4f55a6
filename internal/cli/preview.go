package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgrid/pkg/pipeline"
	"github.com/matzehuels/qrgrid/pkg/qrcode"
	"github.com/matzehuels/qrgrid/pkg/render/layout"
	"github.com/matzehuels/qrgrid/pkg/render/sink"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var level, engine string

	cmd := &cobra.Command{
		Use:   "preview [text]",
		Short: "Tweak styles interactively in the terminal",
		Long: `Encode text and show it in the terminal while you cycle through dot
colours, sizes, corner radii, padding and backgrounds.

Press enter to print the render command for the current look.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts := pipeline.Options{Content: content, Level: level, Engine: engine}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			code, err := qrcode.Encode(content, opts.EncodeOptions()...)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPreviewModel(code), tea.WithContext(cmd.Context()), tea.WithOutput(c.Out))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			if m, ok := final.(PreviewModel); ok && m.Done {
				printNextStep("Render this look", "qrgrid render "+strings.Join(m.Args(), " ")+" "+shellQuote(content))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "error correction level: L, M (default), Q, H")
	cmd.Flags().StringVar(&engine, "engine", "", "encoder: rsc (default), skip2")
	return cmd
}

// =============================================================================
// PreviewModel - Interactive style preview
// =============================================================================

// knob is one adjustable style flag and the values it cycles through. An
// empty value leaves the flag unset.
type knob struct {
	label  string
	flag   string
	values []string
	index  int
}

func (k knob) value() string { return k.values[k.index] }

func (k *knob) step(d int) {
	n := len(k.values)
	k.index = ((k.index+d)%n + n) % n
}

// PreviewModel is the bubbletea model for the preview command.
type PreviewModel struct {
	Code   qrcode.QRCode
	Knobs  []knob
	Cursor int
	Invert bool

	// Done is set when the user accepts the current look with enter.
	Done bool

	renderer *lipgloss.Renderer
}

// NewPreviewModel creates a preview of code with stock styles selected.
func NewPreviewModel(code qrcode.QRCode) PreviewModel {
	return PreviewModel{
		Code: code,
		Knobs: []knob{
			{label: "Dot colour", flag: "dot-color", values: []string{"", "#1d4ed8", "#e4002b", "#15803d", "#7c3aed"}},
			{label: "Dot size", flag: "dot-size", values: []string{"", "0.5rem", "1rem", "2rem"}},
			{label: "Dot radius", flag: "dot-radius", values: []string{"", "1px", "2px", "1rem"}},
			{label: "Background", flag: "bg", values: []string{"", "#fefce8", "#f1f5f9", "transparent"}},
			{label: "Padding", flag: "padding", values: []string{"", "0.5rem", "1rem", "2rem"}},
			{label: "Quiet zone", flag: "quiet-zone", values: []string{"", "1", "4", "6"}},
		},
		renderer: lipgloss.DefaultRenderer(),
	}
}

// flags returns the style flags the knobs currently select.
func (m PreviewModel) flags() styleFlags {
	var f styleFlags
	for _, k := range m.Knobs {
		v := k.value()
		switch k.flag {
		case "dot-color":
			f.dotColor = v
		case "dot-size":
			f.dotSize = v
		case "dot-radius":
			f.dotRadius = v
		case "bg":
			f.background = v
		case "padding":
			f.padding = v
		}
	}
	return f
}

func (m PreviewModel) quietZone() int {
	for _, k := range m.Knobs {
		if k.flag == "quiet-zone" && k.value() != "" {
			n, _ := strconv.Atoi(k.value())
			return n
		}
	}
	return 2
}

// Args returns the render flags reproducing the current look.
func (m PreviewModel) Args() []string {
	var args []string
	for _, k := range m.Knobs {
		if v := k.value(); v != "" {
			args = append(args, "--"+k.flag, shellQuote(v))
		}
	}
	if m.Invert {
		args = append(args, "--invert")
	}
	return args
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Knobs)-1 {
				m.Cursor++
			}
		case "left", "h":
			m.Knobs = cloneKnobs(m.Knobs)
			m.Knobs[m.Cursor].step(-1)
		case "right", "l", " ":
			m.Knobs = cloneKnobs(m.Knobs)
			m.Knobs[m.Cursor].step(1)
		case "i":
			m.Invert = !m.Invert
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// cloneKnobs keeps earlier model values intact; bubbletea models are values.
func cloneKnobs(ks []knob) []knob {
	return append([]knob(nil), ks...)
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("QR Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ change  i invert  ⏎ done  q quit"))
	b.WriteString("\n\n")

	f := m.flags()
	container, err := f.containerSpec().Refinement()
	if err != nil {
		return b.String() + printableError(err)
	}
	dot, err := f.dotSpec().Refinement()
	if err != nil {
		return b.String() + printableError(err)
	}
	tree := m.Code.Refine(container).RefineDotStyle(dot).Render()

	textOpts := []sink.TextOption{sink.WithQuietZone(m.quietZone()), sink.WithRenderer(m.renderer)}
	if m.Invert {
		textOpts = append(textOpts, sink.WithInvert())
	}
	b.WriteString(sink.RenderText(tree, textOpts...))
	b.WriteString("\n\n")

	l := layout.Build(tree)
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d×%d modules · %s×%s px · %d boxes",
		m.Code.Cols(), m.Code.Cols(), trimFloat(l.Width), trimFloat(l.Height), len(l.Boxes))))
	b.WriteString("\n\n")

	for i, k := range m.Knobs {
		v := k.value()
		if v == "" {
			v = "default"
		}
		line := fmt.Sprintf("%-12s %s", k.label, v)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// shellQuote wraps s in single quotes for POSIX shells, so metacharacters
// reach qrgrid unexpanded.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func printableError(err error) string {
	return styleIconError.Render(iconError) + " " + err.Error() + "\n"
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
