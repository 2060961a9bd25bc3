package writefiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/isomesh/mesh"
)

// ErrFormat is returned when a text mesh file does not follow the layout written by WriteText
var ErrFormat = errors.New("malformed text mesh")

/*
WriteText writes the fixed arity text layout, one value per line unless noted:

	3                  dimension
	nodes per element
	1                  faces per element
	node count
	x y z type-code    one line per node
	element count
	0
	id id ...          one line per element

Node ids are reset first. All elements must have the same number of nodes.
*/
func WriteText(w io.Writer, m *mesh.Mesh) (err error) {
	var arity int
	if arity, err = m.Arity(); err != nil {
		return
	}
	m.ResetNodeIDs()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "3\n%d\n1\n%d\n", arity, m.NumNodes())
	for _, n := range m.Nodes {
		fmt.Fprintf(bw, "%s %s %s %d\n", ftoa(n.X()), ftoa(n.Y()), ftoa(n.Z()), int(n.Type))
	}
	fmt.Fprintf(bw, "%d\n0\n", m.NumElements())
	for _, el := range m.Elements {
		ids := make([]string, el.Len())
		for i, n := range el.Nodes {
			ids[i] = strconv.Itoa(m.Nodes[n].ID)
		}
		fmt.Fprintln(bw, strings.Join(ids, " "))
	}
	return bw.Flush()
}

func WriteTextFile(filename string, m *mesh.Mesh) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return
	}
	if err = WriteText(file, m); err != nil {
		file.Close()
		return
	}
	return file.Close()
}

// ReadText reads a mesh written by WriteText. Nodes keep their type codes and all coordinates are 3D.
func ReadText(r io.Reader) (m *mesh.Mesh, err error) {
	var (
		reader               = bufio.NewReader(r)
		dim, arity, faces, n int
		line                 string
	)
	for _, v := range []*int{&dim, &arity, &faces, &n} {
		if *v, err = readNumber(reader); err != nil {
			return
		}
	}
	if dim != 3 || faces != 1 || arity < 1 {
		return nil, fmt.Errorf("%w: header %d %d %d", ErrFormat, dim, arity, faces)
	}
	m = mesh.NewMesh(0)
	for i := 0; i < n; i++ {
		var (
			x, y, z float64
			code    int
		)
		if line, err = getLine(reader); err != nil {
			return nil, err
		}
		if _, err = fmt.Sscanf(line, "%g %g %g %d", &x, &y, &z, &code); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrFormat, i, err)
		}
		if _, err = m.AppendPoint([]float64{x, y, z}, mesh.NodeType(code), false); err != nil {
			return nil, err
		}
	}
	var k, marker int
	if k, err = readNumber(reader); err != nil {
		return nil, err
	}
	if marker, err = readNumber(reader); err != nil {
		return nil, err
	}
	if marker != 0 {
		return nil, fmt.Errorf("%w: element marker %d", ErrFormat, marker)
	}
	for e := 0; e < k; e++ {
		if line, err = getLine(reader); err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != arity {
			return nil, fmt.Errorf("%w: element %d has %d nodes, want %d", ErrFormat, e, len(fields), arity)
		}
		nodes := make([]int, arity)
		for i, f := range fields {
			if nodes[i], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("%w: element %d: %v", ErrFormat, e, err)
			}
		}
		if _, err = m.AppendElement(nodes...); err != nil {
			return nil, err
		}
	}
	return
}

func ReadTextFile(filename string) (m *mesh.Mesh, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	return ReadText(file)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func getLine(reader *bufio.Reader) (line string, err error) {
	for {
		if line, err = reader.ReadString('\n'); err != nil && !(err == io.EOF && len(line) > 0) {
			if err == io.EOF {
				err = fmt.Errorf("%w: unexpected end of file", ErrFormat)
			}
			return
		}
		err = nil
		if line = strings.TrimSpace(line); len(line) != 0 {
			return
		}
	}
}

func readNumber(reader *bufio.Reader) (num int, err error) {
	var line string
	if line, err = getLine(reader); err != nil {
		return
	}
	if num, err = strconv.Atoi(line); err != nil {
		err = fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return
}
