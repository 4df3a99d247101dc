package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version     string // Usually "1.0"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// hasProps reports whether every named vertex property is present
func (h *PLYHeader) hasProps(names ...string) bool {
	for _, name := range names {
		found := false
		for _, p := range h.VertexProps {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// LoadPLY loads a PLY file as object-space mesh data. Polygons are fan-triangulated.
func LoadPLY(filename string, logger core.Logger) (geometry.MeshData, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return geometry.MeshData{}, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return geometry.MeshData{}, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var elements plyElementReader
	switch header.Format {
	case "binary_little_endian":
		elements = &binaryPLYReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		elements = &binaryPLYReader{r: reader, order: binary.BigEndian}
	case "ascii":
		elements = &asciiPLYReader{r: reader}
	default:
		return geometry.MeshData{}, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data, err := readPLYBody(elements, header)
	if err != nil {
		return geometry.MeshData{}, fmt.Errorf("failed to read PLY data: %w", err)
	}

	logger.Printf("Loaded mesh: %d vertices, %d triangles in %v",
		len(data.Vertices), len(data.Faces), time.Since(startTime))
	return data, nil
}

// parsePLYHeader parses the PLY header, leaving r positioned at the first body byte
func parsePLYHeader(r *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	var currentElement string

	magic, err := r.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		raw, err := r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("error reading header: %w", err)
		}
		line := strings.TrimSpace(raw)
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	if !header.hasProps("x", "y", "z") {
		return nil, fmt.Errorf("vertex element lacks x, y, z properties")
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], DataType: parts[2], Name: parts[3]}, nil
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

// plyElementReader reads scalar values in the body's encoding
type plyElementReader interface {
	scalar(dataType string) (float64, error)
}

type binaryPLYReader struct {
	r     io.Reader
	order binary.ByteOrder
}

func (b *binaryPLYReader) scalar(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	var buf [8]byte
	if _, err := io.ReadFull(b.r, buf[:size]); err != nil {
		return 0, err
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf[:4]))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(buf[:8])), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf[:4]))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf[:4])), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf[:2]))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf[:2])), nil
	case "char", "int8":
		return float64(int8(buf[0])), nil
	default: // uchar, uint8
		return float64(buf[0]), nil
	}
}

type asciiPLYReader struct {
	r      *bufio.Reader
	fields []string
}

func (a *asciiPLYReader) scalar(dataType string) (float64, error) {
	for len(a.fields) == 0 {
		line, err := a.r.ReadString('\n')
		if err != nil && line == "" {
			return 0, err
		}
		a.fields = strings.Fields(line)
	}
	token := a.fields[0]
	a.fields = a.fields[1:]
	return strconv.ParseFloat(token, 64)
}

// readPLYBody reads vertex positions, optional normals and texture coordinates, and faces
func readPLYBody(elements plyElementReader, header *PLYHeader) (geometry.MeshData, error) {
	data := geometry.MeshData{
		Vertices: make([]core.Vec3, 0, header.VertexCount),
		Faces:    make([][3]int, 0, header.FaceCount),
	}
	hasNormals := header.hasProps("nx", "ny", "nz")
	hasUVs := header.hasProps("u", "v") || header.hasProps("s", "t")

	values := make(map[string]float64, len(header.VertexProps))
	for i := 0; i < header.VertexCount; i++ {
		for _, prop := range header.VertexProps {
			if prop.IsList {
				if _, err := readPLYList(elements, prop); err != nil {
					return data, fmt.Errorf("vertex %d: %w", i, err)
				}
				continue
			}
			v, err := elements.scalar(prop.Type)
			if err != nil {
				return data, fmt.Errorf("vertex %d property %s: %w", i, prop.Name, err)
			}
			values[prop.Name] = v
		}

		data.Vertices = append(data.Vertices, core.NewVec3(values["x"], values["y"], values["z"]))
		if hasNormals {
			data.Normals = append(data.Normals, core.NewVec3(values["nx"], values["ny"], values["nz"]).Normalize())
		}
		if hasUVs {
			if _, ok := values["u"]; ok {
				data.UVs = append(data.UVs, core.NewVec2(values["u"], values["v"]))
			} else {
				data.UVs = append(data.UVs, core.NewVec2(values["s"], values["t"]))
			}
		}
	}

	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList {
				if _, err := elements.scalar(prop.Type); err != nil {
					return data, fmt.Errorf("face %d property %s: %w", i, prop.Name, err)
				}
				continue
			}
			indices, err := readPLYList(elements, prop)
			if err != nil {
				return data, fmt.Errorf("face %d: %w", i, err)
			}
			if prop.Name != "vertex_indices" && prop.Name != "vertex_index" {
				continue
			}
			if len(indices) < 3 {
				return data, fmt.Errorf("face %d has %d vertices", i, len(indices))
			}
			for k := 1; k+1 < len(indices); k++ {
				data.Faces = append(data.Faces, [3]int{indices[0], indices[k], indices[k+1]})
			}
		}
	}

	return data, nil
}

// readPLYList reads a count-prefixed list property
func readPLYList(elements plyElementReader, prop PLYProperty) ([]int, error) {
	count, err := elements.scalar(prop.ListType)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s count: %w", prop.Name, err)
	}
	list := make([]int, int(count))
	for j := range list {
		v, err := elements.scalar(prop.DataType)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s entry %d: %w", prop.Name, j, err)
		}
		list[j] = int(v)
	}
	return list, nil
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}
