package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
	"github.com/udhos/gwob"
)

// LoadOBJ loads a Wavefront OBJ file as object-space mesh data
func LoadOBJ(filename string, logger core.Logger) (geometry.MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return geometry.MeshData{}, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	return ReadOBJ(filename, file, logger)
}

// ReadOBJ parses OBJ content from r. name is only used in log and error messages.
func ReadOBJ(name string, r io.Reader, logger core.Logger) (geometry.MeshData, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	startTime := time.Now()

	options := gwob.ObjParserOptions{
		Logger:        func(s string) { logger.Printf("%s", s) },
		IgnoreNormals: false,
	}
	obj, err := gwob.NewObjFromReader(name, bufio.NewReader(r), &options)
	if err != nil {
		return geometry.MeshData{}, fmt.Errorf("failed to parse OBJ %s: %w", name, err)
	}

	// Coordinates are interleaved per unique vertex; offsets are in bytes of float32
	stride := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4
	textureOffset := obj.StrideOffsetTexture / 4
	normalOffset := obj.StrideOffsetNormal / 4
	if stride == 0 {
		return geometry.MeshData{}, fmt.Errorf("OBJ %s has no vertex data", name)
	}
	vertexCount := len(obj.Coord) / stride

	data := geometry.MeshData{
		Vertices: make([]core.Vec3, vertexCount),
		Faces:    make([][3]int, 0, len(obj.Indices)/3),
	}
	if obj.NormCoordFound {
		data.Normals = make([]core.Vec3, vertexCount)
	}
	if obj.TextCoordFound {
		data.UVs = make([]core.Vec2, vertexCount)
	}

	for i := 0; i < vertexCount; i++ {
		base := i * stride
		data.Vertices[i] = core.NewVec3(
			obj.Coord64(base+positionOffset),
			obj.Coord64(base+positionOffset+1),
			obj.Coord64(base+positionOffset+2),
		)
		if obj.NormCoordFound {
			data.Normals[i] = core.NewVec3(
				obj.Coord64(base+normalOffset),
				obj.Coord64(base+normalOffset+1),
				obj.Coord64(base+normalOffset+2),
			).Normalize()
		}
		if obj.TextCoordFound {
			data.UVs[i] = core.NewVec2(obj.Coord64(base+textureOffset), obj.Coord64(base+textureOffset+1))
		}
	}

	for f := 0; f+2 < len(obj.Indices); f += 3 {
		data.Faces = append(data.Faces, [3]int{obj.Indices[f], obj.Indices[f+1], obj.Indices[f+2]})
	}

	logger.Printf("Loaded mesh: %d vertices, %d triangles in %v", len(data.Vertices), len(data.Faces), time.Since(startTime))
	return data, nil
}
