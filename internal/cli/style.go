package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgrid/pkg/config"
	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// styleFlags holds the style flags shared by render and preview. Values are
// parsed with the same rules as the config file.
type styleFlags struct {
	preset      string
	background  string
	padding     string
	radius      string
	borderWidth string
	borderColor string
	dotColor    string
	dotSize     string
	dotRadius   string
}

func (f *styleFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.preset, "preset", "", "named style preset (see 'qrgrid presets')")
	fs.StringVar(&f.background, "bg", "", "container background colour")
	fs.StringVar(&f.padding, "padding", "", "container padding, e.g. 1rem or 16px")
	fs.StringVar(&f.radius, "radius", "", "container corner radius")
	fs.StringVar(&f.borderWidth, "border-width", "", "container border width")
	fs.StringVar(&f.borderColor, "border-color", "", "container border colour")
	fs.StringVar(&f.dotColor, "dot-color", "", "dot colour")
	fs.StringVar(&f.dotSize, "dot-size", "", "minimum dot size (default 0.25rem)")
	fs.StringVar(&f.dotRadius, "dot-radius", "", "dot corner radius")
}

func (f styleFlags) containerSpec() config.StyleSpec {
	return config.StyleSpec{
		Background:  f.background,
		Padding:     f.padding,
		Radius:      f.radius,
		BorderWidth: f.borderWidth,
		BorderColor: f.borderColor,
	}
}

func (f styleFlags) dotSpec() config.StyleSpec {
	return config.StyleSpec{
		Background: f.dotColor,
		MinSize:    f.dotSize,
		Radius:     f.dotRadius,
	}
}

// resolve layers the flags over the config file's styles and preset.
func (f styleFlags) resolve(cfg config.Config) (container, dot style.Refinement, err error) {
	container, dot, err = cfg.Styles(f.preset)
	if err != nil {
		return style.Refinement{}, style.Refinement{}, err
	}
	fc, err := f.containerSpec().Refinement()
	if err != nil {
		return style.Refinement{}, style.Refinement{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "container flags")
	}
	fd, err := f.dotSpec().Refinement()
	if err != nil {
		return style.Refinement{}, style.Refinement{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "dot flags")
	}
	return container.Refine(fc), dot.Refine(fd), nil
}
