package writefiles

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/isomesh/mesh"
)

var ErrFieldLength = errors.New("field length does not match the mesh")

type ScalarArray struct {
	Name   string
	Values []float64
}

type VectorArray struct {
	Name    string
	Vectors [][3]float64
}

// Fields are named arrays attached to the points or cells of a PolyData file
type Fields struct {
	PointScalars []ScalarArray
	PointVectors []VectorArray
	CellScalars  []ScalarArray
	CellVectors  []VectorArray
}

func (f *Fields) AddPointScalar(name string, values []float64) {
	f.PointScalars = append(f.PointScalars, ScalarArray{Name: name, Values: values})
}

func (f *Fields) AddPointVector(name string, vectors [][3]float64) {
	f.PointVectors = append(f.PointVectors, VectorArray{Name: name, Vectors: vectors})
}

func (f *Fields) AddCellScalar(name string, values []float64) {
	f.CellScalars = append(f.CellScalars, ScalarArray{Name: name, Values: values})
}

func (f *Fields) AddCellVector(name string, vectors [][3]float64) {
	f.CellVectors = append(f.CellVectors, VectorArray{Name: name, Vectors: vectors})
}

func (f *Fields) ClearPointData() { f.PointScalars, f.PointVectors = nil, nil }
func (f *Fields) ClearCellData()  { f.CellScalars, f.CellVectors = nil, nil }

type vtkFile struct {
	XMLName   xml.Name `xml:"VTKFile"`
	Type      string   `xml:"type,attr"`
	Version   string   `xml:"version,attr"`
	ByteOrder string   `xml:"byte_order,attr"`
	Piece     vtkPiece `xml:"PolyData>Piece"`
}

type vtkPiece struct {
	NumberOfPoints int            `xml:"NumberOfPoints,attr"`
	NumberOfVerts  int            `xml:"NumberOfVerts,attr"`
	NumberOfLines  int            `xml:"NumberOfLines,attr"`
	NumberOfStrips int            `xml:"NumberOfStrips,attr"`
	NumberOfPolys  int            `xml:"NumberOfPolys,attr"`
	PointData      []vtkDataArray `xml:"PointData>DataArray"`
	CellData       []vtkDataArray `xml:"CellData>DataArray"`
	Points         vtkDataArray   `xml:"Points>DataArray"`
	Polys          []vtkDataArray `xml:"Polys>DataArray"`
}

type vtkDataArray struct {
	Type       string `xml:"type,attr"`
	Name       string `xml:"Name,attr,omitempty"`
	Components int    `xml:"NumberOfComponents,attr,omitempty"`
	Format     string `xml:"format,attr"`
	Data       string `xml:",chardata"`
}

func floatArray(name string, components int, values []float64) vtkDataArray {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = ftoa(v)
	}
	return vtkDataArray{Type: "Float64", Name: name, Components: components, Format: "ascii", Data: strings.Join(s, " ")}
}

func intArray(name string, values []int) vtkDataArray {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return vtkDataArray{Type: "Int64", Name: name, Format: "ascii", Data: strings.Join(s, " ")}
}

func flatten(vectors [][3]float64) (flat []float64) {
	flat = make([]float64, 0, 3*len(vectors))
	for _, v := range vectors {
		flat = append(flat, v[:]...)
	}
	return
}

func dataArrays(scalars []ScalarArray, vectors []VectorArray, count int, where string) (arrays []vtkDataArray, err error) {
	for _, s := range scalars {
		if len(s.Values) != count {
			return nil, fmt.Errorf("%w: %s scalar %q has %d values, want %d", ErrFieldLength, where, s.Name, len(s.Values), count)
		}
		arrays = append(arrays, floatArray(s.Name, 1, s.Values))
	}
	for _, v := range vectors {
		if len(v.Vectors) != count {
			return nil, fmt.Errorf("%w: %s vector %q has %d values, want %d", ErrFieldLength, where, v.Name, len(v.Vectors), count)
		}
		arrays = append(arrays, floatArray(v.Name, 3, flatten(v.Vectors)))
	}
	return
}

// WriteVTP writes the mesh as ASCII VTK XML PolyData with every element as a polygon. Node ids are
// reset first, fields may be nil.
func WriteVTP(w io.Writer, m *mesh.Mesh, fields *Fields) (err error) {
	if fields == nil {
		fields = &Fields{}
	}
	m.ResetNodeIDs()
	piece := vtkPiece{
		NumberOfPoints: m.NumNodes(),
		NumberOfPolys:  m.NumElements(),
	}
	if piece.PointData, err = dataArrays(fields.PointScalars, fields.PointVectors, m.NumNodes(), "point"); err != nil {
		return
	}
	if piece.CellData, err = dataArrays(fields.CellScalars, fields.CellVectors, m.NumElements(), "cell"); err != nil {
		return
	}
	points := make([]float64, 0, 3*m.NumNodes())
	for _, n := range m.Nodes {
		points = append(points, n.X(), n.Y(), n.Z())
	}
	piece.Points = floatArray("Points", 3, points)
	var connectivity, offsets []int
	for _, el := range m.Elements {
		for _, n := range el.Nodes {
			connectivity = append(connectivity, m.Nodes[n].ID)
		}
		offsets = append(offsets, len(connectivity))
	}
	piece.Polys = []vtkDataArray{intArray("connectivity", connectivity), intArray("offsets", offsets)}

	file := vtkFile{Type: "PolyData", Version: "0.1", ByteOrder: "LittleEndian", Piece: piece}
	if _, err = io.WriteString(w, xml.Header); err != nil {
		return
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err = enc.Encode(file); err != nil {
		return
	}
	_, err = io.WriteString(w, "\n")
	return
}

func WriteVTPFile(filename string, m *mesh.Mesh, fields *Fields) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return
	}
	if err = WriteVTP(file, m, fields); err != nil {
		file.Close()
		return
	}
	return file.Close()
}
