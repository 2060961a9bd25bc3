package InputParameters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

var ErrJob = errors.New("invalid mesh job")

// MeshJob is a list of mesh blocks welded together in order, read from a YAML job file
type MeshJob struct {
	Title    string  `json:"Title"`
	Epsilon  float64 `json:"Epsilon"`
	Welder   string  `json:"Welder"`   // linear or hash
	NodeType string  `json:"NodeType"` // Optional type applied to every node of the result
	Output   string  `json:"Output"`
	Format   string  `json:"Format"` // txt or vtp, derived from Output when empty
	Blocks   []Block `json:"Blocks"`
}

/*
Block is one generated mesh:

	grid         OriginX, OriginY, Width, Height, NumX, NumY
	quarterdisk  Radius, NumNodes
	annulus      Inner, Outer, From, To (degrees), NumX, NumY

Keys are chosen so that none of them reads as a YAML 1.1 boolean (y, n, on, off...).
*/
type Block struct {
	Type     string    `json:"Type"`
	OriginX  float64   `json:"OriginX"`
	OriginY  float64   `json:"OriginY"`
	Width    float64   `json:"Width"`
	Height   float64   `json:"Height"`
	NumX     int       `json:"NumX"`
	NumY     int       `json:"NumY"`
	Radius   float64   `json:"Radius"`
	NumNodes int       `json:"NumNodes"` // Nodes per edge of each quarter disk patch
	Inner    float64   `json:"Inner"`
	Outer    float64   `json:"Outer"`
	From     float64   `json:"From"`
	To       float64   `json:"To"`
	Reverse  bool      `json:"Reverse"` // Flip element orientation
	Map      *CoordMap `json:"Map"`
}

/*
CoordMap re-embeds a planar block:

	cylinder  (x, y) -> (R cos(x pi/2), R sin(x pi/2), y)
	cap       (x, y) -> (x, y, Offset + Sign sqrt(R^2 - x^2 - y^2))
*/
type CoordMap struct {
	Type   string  `json:"Type"`
	Radius float64 `json:"Radius"`
	Offset float64 `json:"Offset"`
	Sign   float64 `json:"Sign"`
}

func (mj *MeshJob) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, mj); err != nil {
		return
	}
	return mj.Validate()
}

func (mj *MeshJob) Validate() error {
	if len(mj.Blocks) == 0 {
		return fmt.Errorf("%w: no blocks", ErrJob)
	}
	switch strings.ToLower(mj.Welder) {
	case "", "linear", "hash":
	default:
		return fmt.Errorf("%w: unknown welder %q", ErrJob, mj.Welder)
	}
	switch strings.ToLower(mj.NodeType) {
	case "", "undefined", "external", "border", "internal", "fixed":
	default:
		return fmt.Errorf("%w: unknown node type %q", ErrJob, mj.NodeType)
	}
	switch strings.ToLower(mj.Format) {
	case "", "txt", "vtp":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrJob, mj.Format)
	}
	for i, b := range mj.Blocks {
		switch strings.ToLower(b.Type) {
		case "grid", "annulus":
			if b.NumX < 2 || b.NumY < 2 {
				return fmt.Errorf("%w: block %d needs NumX and NumY of at least 2, have %d x %d",
					ErrJob, i, b.NumX, b.NumY)
			}
		case "quarterdisk":
			if b.NumNodes < 2 {
				return fmt.Errorf("%w: block %d needs NumNodes of at least 2, have %d", ErrJob, i, b.NumNodes)
			}
		default:
			return fmt.Errorf("%w: block %d has unknown type %q", ErrJob, i, b.Type)
		}
		if b.Map != nil {
			switch strings.ToLower(b.Map.Type) {
			case "cylinder", "cap":
			default:
				return fmt.Errorf("%w: block %d has unknown map %q", ErrJob, i, b.Map.Type)
			}
		}
	}
	return nil
}

// OutputFormat is Format, or the extension of Output when Format is empty
func (mj *MeshJob) OutputFormat() string {
	if mj.Format != "" {
		return strings.ToLower(mj.Format)
	}
	if strings.HasSuffix(strings.ToLower(mj.Output), ".vtp") {
		return "vtp"
	}
	return "txt"
}

func (mj *MeshJob) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mj.Title)
	fmt.Printf("%8.3g\t\t= Epsilon\n", mj.Epsilon)
	fmt.Printf("[%s]\t\t\t= Welder\n", mj.Welder)
	fmt.Printf("[%s] (%s)\t= Output\n", mj.Output, mj.OutputFormat())
	for i, b := range mj.Blocks {
		fmt.Printf("Blocks[%d] = %s\n", i, b)
	}
}

func (b Block) String() string {
	var s string
	switch strings.ToLower(b.Type) {
	case "grid":
		s = fmt.Sprintf("grid (%g,%g) %gx%g, %dx%d nodes", b.OriginX, b.OriginY, b.Width, b.Height, b.NumX, b.NumY)
	case "quarterdisk":
		s = fmt.Sprintf("quarterdisk R=%g, %d nodes per edge", b.Radius, b.NumNodes)
	case "annulus":
		s = fmt.Sprintf("annulus %g..%g, %g..%g deg, %dx%d nodes", b.Inner, b.Outer, b.From, b.To, b.NumX, b.NumY)
	default:
		s = b.Type
	}
	if b.Map != nil {
		s += fmt.Sprintf(", %s map R=%g", b.Map.Type, b.Map.Radius)
	}
	if b.Reverse {
		s += ", reversed"
	}
	return s
}
