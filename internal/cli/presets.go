package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgrid/pkg/config"
)

// presetsCommand lists the built-in and configured style presets.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, StyleTitle.Render("Presets"))
			fmt.Fprintln(c.Out, presetTable(cfg))
			printNextStep("Use one", "qrgrid render --preset <name> <text>")
			return nil
		},
	}
}

// presetTable renders one row per preset with the non-empty style fields.
func presetTable(cfg config.Config) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]
		rows = append(rows, []string{name, describeSpec(p.Style), describeSpec(p.Dot)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Container", "Dot").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			default:
				return StyleValue
			}
		})
	return t.Render()
}

// describeSpec lists the set fields of s as key=value pairs.
func describeSpec(s config.StyleSpec) string {
	fields := []struct{ k, v string }{
		{"bg", s.Background},
		{"padding", s.Padding},
		{"padding-x", s.PaddingX},
		{"padding-y", s.PaddingY},
		{"width", s.Width},
		{"height", s.Height},
		{"size", s.Size},
		{"min-size", s.MinSize},
		{"radius", s.Radius},
		{"border", s.BorderWidth},
		{"border-color", s.BorderColor},
	}
	out := ""
	for _, f := range fields {
		if f.v == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += f.k + "=" + f.v
	}
	if out == "" {
		return "—"
	}
	return out
}
