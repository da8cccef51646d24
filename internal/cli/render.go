package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arloliu/heatmap"
	"github.com/arloliu/heatmap/lattice"
	"github.com/arloliu/heatmap/sparse"
)

const (
	defaultMaxWidth  = 80 // widest grid drawn, in cells
	defaultMaxHeight = 60 // tallest grid drawn, in cells
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	raw       string // kind of a raw JSON input document
	axis      string // 3D slice, e.g. "z=0"
	maxWidth  int
	maxHeight int
}

// newRenderCmd creates the render command, which draws a heatmap as a shaded
// grid. 3D heatmaps are cut into one layer along the --axis plane.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		maxWidth:  defaultMaxWidth,
		maxHeight: defaultMaxHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a heatmap as a shaded terminal grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.raw, "raw", "", "read a raw JSON document of the given kind: 2d, 3d, 3to2")
	cmd.Flags().StringVar(&opts.axis, "axis", "", "layer of a 3D heatmap to draw: x=K, y=K or z=K (default: lowest z layer)")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", opts.maxWidth, "refuse grids wider than this many cells")
	cmd.Flags().IntVar(&opts.maxHeight, "max-height", opts.maxHeight, "refuse grids taller than this many cells")

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	w := cmd.OutOrStdout()

	s, err := readHeatmap(ctx, source{path: path, in: cmd.InOrStdin(), raw: opts.raw})
	if err != nil {
		return err
	}

	axis := opts.axis
	if axis == "" {
		axis = cfg.Render.Axis
	}

	p, err := planeOf(s, axis)
	if err != nil {
		return err
	}
	if opts.axis != "" && s.Heatmap3 == nil {
		printWarning(w, "--axis only applies to 3D heatmaps, ignoring %q", opts.axis)
	}
	logger.Debug("Rendering plane", "title", p.title, "rect", p.rect)

	g := grid{
		palette:   parsePalette(cfg.Render.Palette),
		maxWidth:  opts.maxWidth,
		maxHeight: opts.maxHeight,
	}
	printTitle(w, p.title)

	return g.render(w, p)
}

// axisSlice selects the layer axis=layer of a 3D heatmap.
type axisSlice struct {
	axis  int // 0=X, 1=Y, 2=Z
	layer int32
}

// parseAxis parses "x=K", "y=K" or "z=K".
func parseAxis(s string) (axisSlice, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return axisSlice{}, fmt.Errorf("invalid axis %q: want x=K, y=K or z=K", s)
	}

	var a axisSlice
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		a.axis = 0
	case "y":
		a.axis = 1
	case "z":
		a.axis = 2
	default:
		return axisSlice{}, fmt.Errorf("invalid axis %q: unknown axis %q", s, name)
	}

	layer, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return axisSlice{}, fmt.Errorf("invalid axis %q: %w", s, err)
	}
	a.layer = int32(layer)

	return a, nil
}

// plane is a 2D view of a heatmap.
type plane struct {
	title string
	rect  lattice.Rect
	get   func(lattice.Cell2) int64
}

// planeOf returns the view drawn for s. 2D and projected heatmaps are drawn
// whole; 3D heatmaps are cut at axis, or at their lowest Z layer if axis is empty.
func planeOf(s *heatmap.Saved, axis string) (plane, error) {
	switch {
	case s.Heatmap2 != nil:
		return plane{title: "2D", rect: s.Heatmap2.Bounds(), get: s.Heatmap2.Get}, nil
	case s.Heatmap3to2 != nil:
		h := s.Heatmap3to2
		title := fmt.Sprintf("3to2 %s (%c summed)", h.Swizzle(), "xyz"[h.Swizzle().FoldedAxis()])

		return plane{title: title, rect: h.Bounds(), get: h.Get}, nil
	case s.Heatmap3 != nil:
		box := s.Heatmap3.Bounds()
		a := axisSlice{axis: 2, layer: box.Z}
		if axis != "" {
			var err error
			if a, err = parseAxis(axis); err != nil {
				return plane{}, err
			}
		}

		return slice3(s.Heatmap3, box, a)
	default:
		return plane{}, errors.New("nothing to render")
	}
}

// slice3 cuts h at a. The kept axes keep their order, so an X cut shows (Y, Z).
func slice3(h *sparse.Heatmap3, box lattice.Box, a axisSlice) (plane, error) {
	if box.Empty() {
		return plane{title: "3D", get: func(lattice.Cell2) int64 { return 0 }}, nil
	}

	var (
		lo   int32
		size int64
		p    plane
	)
	switch a.axis {
	case 0:
		lo, size = box.X, box.Width
		p.title = fmt.Sprintf("3D x=%d", a.layer)
		p.rect = lattice.Rect{X: box.Y, Y: box.Z, Width: box.Height, Height: box.Depth}
		p.get = func(c lattice.Cell2) int64 { return h.Get(lattice.C3(a.layer, c.X, c.Y)) }
	case 1:
		lo, size = box.Y, box.Height
		p.title = fmt.Sprintf("3D y=%d", a.layer)
		p.rect = lattice.Rect{X: box.X, Y: box.Z, Width: box.Width, Height: box.Depth}
		p.get = func(c lattice.Cell2) int64 { return h.Get(lattice.C3(c.X, a.layer, c.Y)) }
	default:
		lo, size = box.Z, box.Depth
		p.title = fmt.Sprintf("3D z=%d", a.layer)
		p.rect = lattice.Rect{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}
		p.get = func(c lattice.Cell2) int64 { return h.Get(lattice.C3(c.X, c.Y, a.layer)) }
	}

	if d := int64(a.layer) - int64(lo); d < 0 || d >= size {
		return plane{}, fmt.Errorf("layer %d is outside the heatmap range [%d, %d]", a.layer, lo, int64(lo)+size-1)
	}

	return p, nil
}

// grid draws planes with one two-character glyph per cell, the top row holding
// the highest Y.
type grid struct {
	palette   []lipgloss.Color
	maxWidth  int
	maxHeight int
}

func (g grid) render(w io.Writer, p plane) error {
	r := p.rect
	if r.Empty() {
		fmt.Fprintln(w, styleDim.Render("(empty)"))
		return nil
	}
	if r.Width > int64(g.maxWidth) || r.Height > int64(g.maxHeight) {
		return fmt.Errorf("grid of %dx%d cells exceeds the %dx%d limit", r.Width, r.Height, g.maxWidth, g.maxHeight)
	}

	styles := make([]lipgloss.Style, len(g.palette))
	for i, c := range g.palette {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}

	top := int64(r.Y) + r.Height - 1
	labelWidth := max(len(strconv.FormatInt(int64(r.Y), 10)), len(strconv.FormatInt(top, 10)))

	var peak int64
	for y := int64(r.Y); y <= top; y++ {
		for x := int64(r.X); x < int64(r.X)+r.Width; x++ {
			peak = max(peak, p.get(lattice.C2(int32(x), int32(y))))
		}
	}

	var sb strings.Builder
	for y := top; y >= int64(r.Y); y-- {
		sb.Reset()
		sb.WriteString(styleDim.Render(fmt.Sprintf("%*d ", labelWidth, y)))
		for x := int64(r.X); x < int64(r.X)+r.Width; x++ {
			v := p.get(lattice.C2(int32(x), int32(y)))
			if v == 0 {
				sb.WriteString(styleDim.Render(glyphEmpty))
				continue
			}
			sb.WriteString(styles[shade(v, peak, len(styles))].Render(glyphCell))
		}
		fmt.Fprintln(w, sb.String())
	}

	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%*s x %d..%d, peak %d", labelWidth, "", r.X, int64(r.X)+r.Width-1, peak)))

	return nil
}

// shade maps v onto one of n palette entries, 0 for the weakest and n-1 for peak.
func shade(v, peak int64, n int) int {
	if n <= 1 || peak <= 0 || v <= 0 {
		return 0
	}
	idx := int(float64(v)/float64(peak)*float64(n-1) + 0.5)

	return min(max(idx, 0), n-1)
}
