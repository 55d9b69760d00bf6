package glider

// AirfoilParams fully determines one NACA style 4-digit airfoil profile.
type AirfoilParams struct {
	Chord     float64 `yaml:"chord" json:"chord"`
	Thickness float64 `yaml:"thickness" json:"thickness"` // fraction of chord, (0,1)
	Camber    float64 `yaml:"camber" json:"camber"`       // max camber as fraction of chord
	CamberPos float64 `yaml:"camberPos" json:"camberPos"` // position of max camber, (0,1)
	// Incidence in degrees, rotated about the pivot. Positive values lower the leading edge.
	AngleDeg float64 `yaml:"angle" json:"angle"`
	// Pivot position as a fraction of chord, [0,1].
	PivotRatio float64 `yaml:"pivot" json:"pivot"`
}

// FinMount selects which nacelle fins are generated.
type FinMount int

const (
	FinNone FinMount = iota
	FinTop
	FinBottom
	FinBoth
)

func (f FinMount) String() (str string) {
	switch f {
	case FinNone:
		str = "none"
	case FinTop:
		str = "top"
	case FinBottom:
		str = "bottom"
	case FinBoth:
		str = "both"
	default:
		str = "unknown"
	}
	return str
}

// Top reports whether a top fin is requested.
func (f FinMount) Top() bool { return f == FinTop || f == FinBoth }

// Bottom reports whether a bottom fin is requested.
func (f FinMount) Bottom() bool { return f == FinBottom || f == FinBoth }

// WingSectionParams is one spanwise station of a wing. SpanLength is the
// length of the panel between this station and the next one.
type WingSectionParams struct {
	Airfoil     AirfoilParams `yaml:"airfoil" json:"airfoil"`
	SpanLength  float64       `yaml:"length" json:"length"`
	DihedralDeg float64       `yaml:"dihedral" json:"dihedral"`
	Nacelle     bool          `yaml:"nacelle" json:"nacelle"`
	NacelleFin  FinMount      `yaml:"nacelleFin" json:"nacelleFin"`
}

// WingParams is an ordered root to tip list of wing stations and the
// planform parameters shared by all panels.
type WingParams struct {
	Sections []WingSectionParams `yaml:"sections" json:"sections"`
	// Leading edge displacement at the tip.
	Sweep float64 `yaml:"sweep" json:"sweep"`
	// Planform edge exponents. Zero means linear (1).
	LeadCurve  float64 `yaml:"leadCurve" json:"leadCurve"`
	TrailCurve float64 `yaml:"trailCurve" json:"trailCurve"`
	Mirrored   bool    `yaml:"mirrored" json:"mirrored"`
	// Airfoil stations per surface. Zero means 50.
	Resolution int `yaml:"resolution" json:"resolution"`
}

// SectionKind selects a cross-section shape.
type SectionKind int

const (
	SectionRoundedRect SectionKind = iota
	SectionEllipse
	// SectionBlend builds the top and bottom halves from different kinds.
	SectionBlend
)

func (k SectionKind) String() (str string) {
	switch k {
	case SectionRoundedRect:
		str = "roundrect"
	case SectionEllipse:
		str = "ellipse"
	case SectionBlend:
		str = "blend"
	default:
		str = "unknown"
	}
	return str
}

// CrossSection describes a closed body cross-section centered at the origin.
type CrossSection struct {
	Kind   SectionKind `yaml:"kind" json:"kind"`
	Width  float64     `yaml:"width" json:"width"`
	Height float64     `yaml:"height" json:"height"`
	// Half kinds used by SectionBlend. Must be SectionRoundedRect or SectionEllipse.
	TopKind      SectionKind `yaml:"topKind" json:"topKind"`
	BottomKind   SectionKind `yaml:"bottomKind" json:"bottomKind"`
	TopRadius    float64     `yaml:"topRadius" json:"topRadius"`
	BottomRadius float64     `yaml:"bottomRadius" json:"bottomRadius"`
}

// FuselageParams defines a lofted body along Z from the nose (Z=0) to the tail (Z=Length).
type FuselageParams struct {
	Length      float64 `yaml:"length" json:"length"`
	FrontWidth  float64 `yaml:"frontWidth" json:"frontWidth"`
	FrontHeight float64 `yaml:"frontHeight" json:"frontHeight"`
	BackWidth   float64 `yaml:"backWidth" json:"backWidth"`
	BackHeight  float64 `yaml:"backHeight" json:"backHeight"`
	// Corner radius at the front section. Scaled with the local taper.
	CornerRadius float64 `yaml:"cornerRadius" json:"cornerRadius"`
	// Taper exponents. Zero means linear (1).
	CurveH float64 `yaml:"curveH" json:"curveH"`
	CurveV float64 `yaml:"curveV" json:"curveV"`
	// Station fraction where tapering starts, [0,1).
	TaperPosH float64 `yaml:"taperPosH" json:"taperPosH"`
	TaperPosV float64 `yaml:"taperPosV" json:"taperPosV"`
	// Where the back section sits relative to the front one: 0 bottoms
	// aligned, 0.5 centered, 1 tops aligned.
	VerticalAlign float64 `yaml:"verticalAlign" json:"verticalAlign"`
	// Vertical offset of the tail centerline relative to the nose.
	TailHeight    float64 `yaml:"tailHeight" json:"tailHeight"`
	CloseNose     bool    `yaml:"closeNose" json:"closeNose"`
	CloseTail     bool    `yaml:"closeTail" json:"closeTail"`
	NosecapLength float64 `yaml:"nosecapLength" json:"nosecapLength"`
	TailcapLength float64 `yaml:"tailcapLength" json:"tailcapLength"`
	// Cap shape exponents. Zero means a dome (1).
	NoseSharpness float64 `yaml:"noseSharpness" json:"noseSharpness"`
	TailSharpness float64 `yaml:"tailSharpness" json:"tailSharpness"`
	// Rings per cap. Zero means 5.
	CapSegments  int `yaml:"capSegments" json:"capSegments"`
	SegmentCount int `yaml:"segmentCount" json:"segmentCount"`
	// Points per cross-section ring. Zero means 64.
	SectionPoints int `yaml:"sectionPoints" json:"sectionPoints"`
	// Shape of the cross-section. Width, Height and radii are ignored, they
	// come from the taper laws above.
	Section CrossSection `yaml:"section" json:"section"`
}

// FinParams defines a flat, extruded fin such as a rudder or a nacelle fin.
type FinParams struct {
	Height            float64 `yaml:"height" json:"height"`
	RootChord         float64 `yaml:"rootChord" json:"rootChord"`
	TipChord          float64 `yaml:"tipChord" json:"tipChord"`
	Sweep             float64 `yaml:"sweep" json:"sweep"`
	Thickness         float64 `yaml:"thickness" json:"thickness"`
	FrontCornerRadius float64 `yaml:"frontCornerRadius" json:"frontCornerRadius"`
	BackCornerRadius  float64 `yaml:"backCornerRadius" json:"backCornerRadius"`
	// Chordwise offset of the root leading edge from the mount point.
	Offset float64 `yaml:"offset" json:"offset"`
	// Sideways lean in degrees about the chord axis, e.g. 45 for a fin tilted inboard.
	AngleDeg float64 `yaml:"angle" json:"angle"`
}

// NacelleParams defines a nacelle body and the fins mounted on it.
type NacelleParams struct {
	Body FuselageParams `yaml:"body" json:"body"`
	Fin  FinParams      `yaml:"fin" json:"fin"`
}
