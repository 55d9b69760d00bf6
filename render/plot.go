package render

import (
	"fmt"

	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Outline is a named polyline to be plotted.
type Outline struct {
	Name   string
	Points glider.Polyline2
	// Closed draws the segment from the last point back to the first.
	Closed bool
}

// PlotOutlines draws outlines on a single plot with equal axis scales.
func PlotOutlines(title string, outlines ...Outline) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"
	p.Add(plotter.NewGrid())
	var vs []interface{}
	var lo, hi float64
	for i, o := range outlines {
		if len(o.Points) == 0 {
			continue
		}
		n := len(o.Points)
		if o.Closed {
			n++
		}
		xys := make(plotter.XYs, n)
		for j := range xys {
			v := o.Points[j%len(o.Points)]
			xys[j] = plotter.XY{X: v.X, Y: v.Y}
			lo = min(lo, v.X, v.Y)
			hi = max(hi, v.X, v.Y)
		}
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("outline %d", i)
		}
		vs = append(vs, name, xys)
	}
	if err := plotutil.AddLines(p, vs...); err != nil {
		return nil, err
	}
	// Same range on both axes keeps sections undistorted.
	p.X.Min, p.X.Max = lo, hi
	p.Y.Min, p.Y.Max = lo, hi
	return p, nil
}

// PlotSections saves the cross-sections of a surface to path. The image
// format is chosen from the file extension (png, svg, pdf...).
func PlotSections(path, title string, sections []glider.SectionFrame, closed bool, size vg.Length) error {
	outlines := make([]Outline, len(sections))
	for i, s := range sections {
		pts := make(glider.Polyline2, len(s.Points))
		for j, v := range s.Points {
			pts[j] = r2.Vec{X: v.X, Y: v.Y + s.VerticalOffset}
		}
		outlines[i] = Outline{
			Name:   fmt.Sprintf("%.4g", s.AxialPos),
			Points: pts,
			Closed: closed,
		}
	}
	p, err := PlotOutlines(title, outlines...)
	if err != nil {
		return err
	}
	return p.Save(size, size, path)
}
