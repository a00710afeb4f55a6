package pipeline

import (
	"context"

	"github.com/matzehuels/qrgrid/pkg/element"
	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/render/layout"
	"github.com/matzehuels/qrgrid/pkg/render/sink"
)

// Render produces a single format from a built tree and its layout. Text
// output is plain; callers that want colour use sink.RenderText directly.
func Render(ctx context.Context, format string, tree element.Element, l layout.Layout, opts Options) ([]byte, error) {
	svgOpts := opts.svgOptions()

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(l,
			sink.WithJSONContent(opts.Content),
			sink.WithJSONLevel(opts.Level, opts.Engine))
	case FormatText:
		txt := sink.RenderText(tree, sink.WithQuietZone(opts.QuietZone), sink.WithPlainText())
		return []byte(txt + "\n"), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

func (o Options) svgOptions() []sink.SVGOption {
	var out []sink.SVGOption
	if o.Title != "" {
		out = append(out, sink.WithTitle(o.Title))
	}
	if o.CrispEdges {
		out = append(out, sink.WithCrispEdges())
	}
	return out
}
