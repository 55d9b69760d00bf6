package must3

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soypat/glider"
	"github.com/soypat/glider/form2/must2"
	"github.com/soypat/glider/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func testFuselageParams() glider.FuselageParams {
	return glider.FuselageParams{
		Length:        200,
		FrontWidth:    40,
		FrontHeight:   50,
		BackWidth:     10,
		BackHeight:    20,
		CornerRadius:  12,
		CurveH:        1.5,
		CurveV:        1,
		TaperPosH:     0.3,
		TaperPosV:     0.2,
		VerticalAlign: 0.8,
		TailHeight:    5,
		CloseNose:     true,
		CloseTail:     true,
		NosecapLength: 20,
		TailcapLength: 8,
		SegmentCount:  12,
		SectionPoints: 32,
	}
}

func TestFuselage(t *testing.T) {
	p := testFuselageParams()
	s := Fuselage(p)
	if err := s.Mesh.Validate(); err != nil {
		t.Fatal(err)
	}
	checkClosed(t, s.Mesh)
	if vol := signedVolume(s.Mesh); vol <= 0 {
		t.Errorf("fuselage volume %g, triangles face inward", vol)
	}
	box := s.Mesh.Bounds()
	if box.Min.Z != -p.NosecapLength {
		t.Errorf("nose tip at z=%g, want %g", box.Min.Z, -p.NosecapLength)
	}
	if box.Max.Z != p.Length+p.TailcapLength {
		t.Errorf("tail tip at z=%g, want %g", box.Max.Z, p.Length+p.TailcapLength)
	}
	if math.Abs(box.Max.X-p.FrontWidth/2) > 1e-9 {
		t.Errorf("max half width %g, want %g", box.Max.X, p.FrontWidth/2)
	}
	if len(s.Frames) != 2 || s.Frames[0].Position.Y <= s.Frames[1].Position.Y {
		t.Errorf("bad tail frames %v", s.Frames)
	}
	for i := 1; i < len(s.Sections); i++ {
		if s.Sections[i].AxialPos <= s.Sections[i-1].AxialPos {
			t.Fatalf("sections not ordered at %d", i)
		}
	}

	// Open ends get flat fans and stay closed.
	p.CloseNose, p.CloseTail = false, false
	open := Fuselage(p)
	checkClosed(t, open.Mesh)
	if b := open.Mesh.Bounds(); b.Min.Z != 0 || b.Max.Z != p.Length {
		t.Errorf("uncapped fuselage spans z=[%g,%g]", b.Min.Z, b.Max.Z)
	}
}

func TestDeterministic(t *testing.T) {
	mirrored := testWingParams()
	mirrored.Mirrored = true
	fin := glider.FinParams{Height: 40, RootChord: 30, TipChord: 15, Sweep: 10, Thickness: 2, BackCornerRadius: 5}
	for _, test := range []struct {
		name  string
		build func() glider.Surface
	}{
		{"fuselage", func() glider.Surface { return Fuselage(testFuselageParams()) }},
		{"wing", func() glider.Surface { return Wing(testWingParams()) }},
		{"mirrored wing", func() glider.Surface { return Wing(mirrored) }},
		{"fin", func() glider.Surface { return Fin(fin) }},
		{"nacelle", func() glider.Surface { return Nacelle(testNacelleParams(), glider.FinBoth, glider.Left) }},
	} {
		a, b := test.build(), test.build()
		if d := cmp.Diff(a, b); d != "" {
			t.Errorf("%s differs between calls (-first +second):\n%s", test.name, d)
		}
	}
}

func TestFuselageProfile(t *testing.T) {
	p := testFuselageParams()
	prof := Profile(p)
	front, back := prof.At(0), prof.At(1)
	if front.Width != p.FrontWidth || front.Height != p.FrontHeight || front.Center != 0 {
		t.Errorf("front station %+v", front)
	}
	if math.Abs(back.Width-p.BackWidth) > 1e-12 || math.Abs(back.Height-p.BackHeight) > 1e-12 {
		t.Errorf("back station %+v", back)
	}
	// Align 0.8 moves the back section toward the top line of the nose.
	wantCenter := (p.FrontHeight-p.BackHeight)*(p.VerticalAlign-0.5) + p.TailHeight
	if math.Abs(back.Center-wantCenter) > 1e-12 {
		t.Errorf("back center %g, want %g", back.Center, wantCenter)
	}
	if mid := prof.At(0.1); mid.Width != p.FrontWidth || mid.Height != p.FrontHeight {
		t.Errorf("station before taper start changed size: %+v", mid)
	}
	top := prof.Mount(p.Length, true)
	if math.Abs(top.Position.Y-(back.Center+back.Height/2)) > 1e-12 || top.Position.Z != p.Length {
		t.Errorf("tail top mount %+v", top)
	}
	if prof.Params().SegmentCount != p.SegmentCount {
		t.Error("profile lost segment count")
	}
	if Profile(glider.FuselageParams{Length: 1, FrontWidth: 1, FrontHeight: 1}).Params().SegmentCount != DefaultSegmentCount {
		t.Error("zero segment count not defaulted")
	}
	func() {
		defer func() {
			r := recover()
			if err, _ := r.(error); !errors.Is(err, glider.ErrInvalidParameter) {
				t.Errorf("single segment fuselage: got panic %v, want invalid parameter", r)
			}
		}()
		Profile(glider.FuselageParams{Length: 1, FrontWidth: 1, FrontHeight: 1, SegmentCount: 1})
	}()
}

func testWingParams() glider.WingParams {
	af := func(chord float64) glider.AirfoilParams {
		return glider.AirfoilParams{Chord: chord, Thickness: 0.12, CamberPos: 0.4, PivotRatio: 1}
	}
	return glider.WingParams{
		Sections: []glider.WingSectionParams{
			{Airfoil: af(100), SpanLength: 150},
			{Airfoil: af(60)},
		},
		Resolution: 30,
	}
}

func TestWingTapered(t *testing.T) {
	s := Wing(testWingParams())
	if err := s.Mesh.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		x          float64
		zmin, zmax float64
	}{
		{x: 0, zmin: 0, zmax: 100},
		{x: 150, zmin: 0, zmax: 60},
	} {
		zmin, zmax := math.Inf(1), math.Inf(-1)
		for _, v := range s.Mesh.Vertices {
			if v.X == test.x {
				zmin, zmax = math.Min(zmin, v.Z), math.Max(zmax, v.Z)
			}
		}
		if math.Abs(zmin-test.zmin) > 1e-9 || math.Abs(zmax-test.zmax) > 1e-9 {
			t.Errorf("ring at x=%g spans z=[%g,%g], want [%g,%g]", test.x, zmin, zmax, test.zmin, test.zmax)
		}
	}
	if box := s.Mesh.Bounds(); box.Min.X != 0 || box.Max.X != 150 {
		t.Errorf("span [%g,%g], want [0,150]", box.Min.X, box.Max.X)
	}
	if vol := signedVolume(s.Mesh); vol <= 0 {
		t.Errorf("wing volume %g, triangles face inward", vol)
	}
	if len(s.Frames) != 1 || s.Frames[0].Position != (r3.Vec{X: 150, Z: 30}) {
		t.Errorf("got frames %+v", s.Frames)
	}
}

func TestWingFrameSlope(t *testing.T) {
	p := testWingParams()
	p.Sections[1].Airfoil.AngleDeg = 4
	s := Wing(p)
	if len(s.Frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(s.Frames))
	}
	if got, want := s.Frames[0].SlopeRad, glider.DtoR(4); got != want {
		t.Errorf("frame slope %g, want airfoil incidence %g", got, want)
	}
}

func TestWingDihedral(t *testing.T) {
	p := testWingParams()
	p.Sections = []glider.WingSectionParams{p.Sections[0], p.Sections[0], p.Sections[1]}
	p.Sections[0].SpanLength, p.Sections[1].SpanLength = 100, 100
	p.Sections[0].DihedralDeg, p.Sections[1].DihedralDeg = 10, 10
	s := Wing(p)
	want := 2 * 100 * math.Tan(glider.DtoR(10))
	if got := s.Sections[2].VerticalOffset; math.Abs(got-want) > 1e-9 {
		t.Errorf("tip offset %g, want %g", got, want)
	}
	if got := s.Frames[1].Position.Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("tip frame height %g, want %g", got, want)
	}
}

func TestWingMirror(t *testing.T) {
	p := testWingParams()
	p.Mirrored = true
	p.Sweep = 20
	s := Wing(p)
	half := Wing(testWingParams())
	if len(s.Mesh.Triangles) != 2*len(half.Mesh.Triangles) {
		t.Fatalf("mirrored wing has %d triangles, half wing %d", len(s.Mesh.Triangles), len(half.Mesh.Triangles))
	}
	if vol, halfVol := signedVolume(s.Mesh), signedVolume(Wing(func() glider.WingParams {
		q := testWingParams()
		q.Sweep = 20
		return q
	}()).Mesh); math.Abs(vol-2*halfVol) > 1e-6*halfVol {
		t.Errorf("mirrored volume %g, want %g", vol, 2*halfVol)
	}
	// Tip caps face away from the symmetry plane.
	var right, left r3.Vec
	for _, tri := range s.Mesh.Triangles {
		a, b, c := s.Mesh.Vertices[tri[0]], s.Mesh.Vertices[tri[1]], s.Mesh.Vertices[tri[2]]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		switch {
		case a.X == 150 && b.X == 150 && c.X == 150:
			right = r3.Add(right, n)
		case a.X == -150 && b.X == -150 && c.X == -150:
			left = r3.Add(left, n)
		}
	}
	if right.X <= 0 || left.X >= 0 {
		t.Errorf("tip normals right %v left %v", right, left)
	}
	if len(s.Frames) != 2 || s.Frames[1].Side != glider.Left || s.Frames[1].Position.X != -150 {
		t.Errorf("got frames %+v", s.Frames)
	}
	// Normals of the left half are the reflection of the right half's, so
	// they point away from X=0 wherever the right ones do.
	normals := s.Mesh.Normals()
	n := len(s.Mesh.Vertices) / 2
	var away int
	for i := 0; i < n; i++ {
		right, left := normals[i], normals[n+i]
		if s.Mesh.Vertices[n+i].X >= 0 {
			continue
		}
		want := r3.Vec{X: -right.X, Y: right.Y, Z: right.Z}
		if !d3.EqualWithin(left, want, 1e-12) {
			t.Fatalf("vertex %d at %v: normal %v, want reflected %v", n+i, s.Mesh.Vertices[n+i], left, want)
		}
		if right.X > 0 && left.X >= 0 {
			t.Fatalf("vertex %d at %v: normal %v points toward X=0", n+i, s.Mesh.Vertices[n+i], left)
		}
		if left.X < 0 {
			away++
		}
	}
	if away == 0 {
		t.Error("no left half normal points away from X=0")
	}
}

func TestFin(t *testing.T) {
	p := glider.FinParams{Height: 40, RootChord: 30, TipChord: 15, Sweep: 10, Thickness: 2, BackCornerRadius: 5}
	s := Fin(p)
	checkClosed(t, s.Mesh)
	want := must2.FinOutline(p).SignedArea() * p.Thickness
	if vol := signedVolume(s.Mesh); math.Abs(vol-want) > 1e-9*want {
		t.Errorf("fin volume %g, want %g", vol, want)
	}
}

func TestFinTransformLean(t *testing.T) {
	p := glider.FinParams{Height: 40, RootChord: 30, TipChord: 15, Thickness: 2}
	fin := Fin(p).Mesh
	// tipX returns the mean X of the fin tip vertices.
	tipX := func(m glider.Mesh, bottom bool) float64 {
		var sum float64
		var n int
		for _, v := range m.Vertices {
			if (!bottom && v.Y > 30) || (bottom && v.Y < -30) {
				sum += v.X
				n++
			}
		}
		if n == 0 {
			t.Fatal("no tip vertices")
		}
		return sum / float64(n)
	}
	for _, test := range []struct {
		side   glider.Side
		bottom bool
		// sign of the tip X displacement.
		want float64
	}{
		{side: glider.Right, want: -1},
		{side: glider.Left, want: 1},
		{side: glider.Right, bottom: true, want: -1},
		{side: glider.Left, bottom: true, want: 1},
	} {
		frame := glider.AttachmentFrame{Side: test.side}
		m := MountFin(fin, frame, 20, test.bottom)
		got := tipX(m, test.bottom)
		if math.Copysign(1, got) != test.want || math.Abs(math.Abs(got)-40*math.Sin(glider.DtoR(20))) > 2 {
			t.Errorf("side %v bottom %v: tip x %g", test.side, test.bottom, got)
		}
	}
}

func TestFinTransformSlope(t *testing.T) {
	const slope = 0.1
	frame := glider.AttachmentFrame{Position: r3.Vec{Y: 5}, SlopeRad: slope, Side: glider.Right}
	tf := FinTransform(frame, 0, false)
	te := tf.Transform(r3.Vec{Z: 30})
	want := r3.Vec{Y: 5 + 30*math.Sin(slope), Z: 30 * math.Cos(slope)}
	if r3.Norm(r3.Sub(te, want)) > 1e-9 {
		t.Errorf("root trailing edge at %v, want %v", te, want)
	}
	if got := tf.Transform(r3.Vec{}); got != frame.Position {
		t.Errorf("root leading edge at %v, want %v", got, frame.Position)
	}
}

func testNacelleParams() glider.NacelleParams {
	return glider.NacelleParams{
		Body: glider.FuselageParams{
			Length:        60,
			FrontWidth:    20,
			FrontHeight:   20,
			BackWidth:     10,
			BackHeight:    10,
			VerticalAlign: 0.5,
			CloseNose:     true,
			NosecapLength: 10,
			SegmentCount:  6,
			SectionPoints: 24,
			Section:       glider.CrossSection{Kind: glider.SectionEllipse},
		},
		Fin: glider.FinParams{Height: 15, RootChord: 20, TipChord: 10, Thickness: 1, Offset: 30, AngleDeg: 10},
	}
}

func TestNacelle(t *testing.T) {
	p := testNacelleParams()
	s := Nacelle(p, glider.FinBoth, glider.Right)
	if len(s.Frames) != 2 || s.Frames[0].Position.Y <= 0 || s.Frames[1].Position.Y >= 0 {
		t.Fatalf("got fin frames %+v", s.Frames)
	}
	if s.Frames[0].Position.Z != 30 {
		t.Errorf("fin mounted at z=%g, want 30", s.Frames[0].Position.Z)
	}
	bare := Nacelle(p, glider.FinNone, glider.Right)
	if len(bare.Frames) != 0 || len(bare.Mesh.Triangles) >= len(s.Mesh.Triangles) {
		t.Error("fins added without being requested")
	}

	frame := glider.AttachmentFrame{Position: r3.Vec{X: 100, Y: 3, Z: 50}, Side: glider.Right}
	placed := PlaceNacelle(bare, p.Body.Length, frame)
	box := placed.Mesh.Bounds()
	if cx := (box.Min.X + box.Max.X) / 2; math.Abs(cx-100) > 1e-9 {
		t.Errorf("nacelle centered at x=%g, want 100", cx)
	}
	if want := 50 - p.Body.Length/2 - p.Body.NosecapLength; math.Abs(box.Min.Z-want) > 1e-9 {
		t.Errorf("nose at z=%g, want %g", box.Min.Z, want)
	}
}
