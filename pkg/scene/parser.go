package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
	"github.com/df07/go-dirt/pkg/integrator"
	"github.com/df07/go-dirt/pkg/loaders"
	"github.com/df07/go-dirt/pkg/material"
	"github.com/df07/go-dirt/pkg/renderer"
)

// Load reads a JSON scene file. Relative file names inside it resolve against its directory.
func Load(filename string, logger core.Logger) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data, filepath.Dir(filename), logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Parse builds a scene from JSON content
func Parse(data []byte, baseDir string, logger core.Logger) (*Scene, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}

	s := NewScene(logger)
	s.baseDir = baseDir
	if err := s.parseRoot(Record(root)); err != nil {
		return nil, err
	}

	s.logger.Printf("Loaded scene: %d surfaces, %d named materials", len(s.Surfaces), len(s.Materials))
	return s, nil
}

func (s *Scene) parseRoot(root Record) error {
	cameraRecord, err := root.Object("camera")
	if err != nil {
		return err
	}
	if s.Camera, err = ParseCamera(cameraRecord); err != nil {
		return err
	}

	if root.Has("sampler") {
		samplerRecord, err := root.Object("sampler")
		if err != nil {
			return err
		}
		if s.SamplingConfig, err = ParseSampling(samplerRecord); err != nil {
			return err
		}
	}

	if s.BackgroundColor, err = root.Vec3Or("background", DefaultBackground); err != nil {
		return err
	}

	if root.Has("integrator") {
		integratorRecord, err := root.Object("integrator")
		if err != nil {
			return err
		}
		if s.Integrator, err = ParseIntegrator(integratorRecord); err != nil {
			return err
		}
	}

	materials, err := root.Records("materials")
	if err != nil {
		return err
	}
	for _, r := range materials {
		name, err := r.Str("name")
		if err != nil {
			return err
		}
		m, err := s.ParseMaterial(r)
		if err != nil {
			return err
		}
		s.Materials[name] = m
	}

	surfaces, err := root.Records("surfaces")
	if err != nil {
		return err
	}
	for _, r := range surfaces {
		parsed, err := s.ParseSurface(r)
		if err != nil {
			return err
		}
		s.Add(parsed...)
	}
	return nil
}

// ParseCamera reads transform, vfov and resolution; all are optional
func ParseCamera(r Record) (*renderer.Camera, error) {
	config := renderer.DefaultCameraConfig()

	if r.Has("transform") {
		t, err := ParseTransform(r["transform"])
		if err != nil {
			return nil, err
		}
		config.Transform = t
	}

	vfov, err := r.FloatOr("vfov", config.VFov)
	if err != nil {
		return nil, err
	}
	if vfov <= 0 || vfov >= 180 {
		return nil, &ConfigError{Record: r, Field: "vfov", Reason: "must be between 0 and 180 degrees"}
	}
	config.VFov = vfov

	if r.Has("resolution") {
		res, err := r.Floats("resolution", 2)
		if err != nil {
			return nil, err
		}
		config.Width, config.Height = int(res[0]), int(res[1])
		if config.Width <= 0 || config.Height <= 0 {
			return nil, &ConfigError{Record: r, Field: "resolution", Reason: "must be positive"}
		}
	}

	return renderer.NewCamera(config), nil
}

// ParseSampling reads the samples per pixel and an optional seed
func ParseSampling(r Record) (renderer.SamplingConfig, error) {
	config := renderer.DefaultSamplingConfig()

	samples, err := r.IntOr("samples", config.SamplesPerPixel)
	if err != nil {
		return config, err
	}
	if samples < 1 {
		return config, &ConfigError{Record: r, Field: "samples", Reason: "must be at least 1"}
	}
	config.SamplesPerPixel = samples

	seed, err := r.IntOr("seed", int(config.Seed))
	if err != nil {
		return config, err
	}
	config.Seed = int64(seed)
	return config, nil
}

// ParseIntegrator selects the estimator used for primary rays
func ParseIntegrator(r Record) (integrator.Integrator, error) {
	typ, err := r.Str("type")
	if err != nil {
		return nil, err
	}

	switch typ {
	case "normals":
		return integrator.NewNormalIntegrator(), nil
	case "ao":
		return integrator.NewAmbientOcclusion(), nil
	case "path_tracer_mats":
		maxDepth, err := r.Int("max_bounces")
		if err != nil {
			return nil, err
		}
		if maxDepth < 0 {
			return nil, &ConfigError{Record: r, Field: "max_bounces", Reason: "must not be negative"}
		}
		return integrator.NewPathTracerMaterials(maxDepth), nil
	default:
		return nil, &ConfigError{Record: r, Field: "type", Reason: fmt.Sprintf("unknown integrator type %q", typ)}
	}
}

// ParseTransform accepts a single transform command or an array of commands
// applied in order
func ParseTransform(v any) (core.Transform, error) {
	switch val := v.(type) {
	case []any:
		xform := core.IdentityTransform()
		for _, item := range val {
			step, err := ParseTransform(item)
			if err != nil {
				return core.Transform{}, err
			}
			xform = xform.Then(step)
		}
		return xform, nil
	case map[string]any:
		return parseTransformCommand(Record(val))
	default:
		return core.Transform{}, &ConfigTypeError{
			Record: Record{"transform": v},
			Field:  "transform",
			Want:   "an object or an array of objects",
		}
	}
}

func parseTransformCommand(r Record) (core.Transform, error) {
	switch {
	case r.Has("from") || r.Has("at") || r.Has("up"):
		from, err := r.Vec3Or("from", core.NewVec3(0, 0, 1))
		if err != nil {
			return core.Transform{}, err
		}
		at, err := r.Vec3Or("at", core.Vec3{})
		if err != nil {
			return core.Transform{}, err
		}
		up, err := r.Vec3Or("up", core.NewVec3(0, 1, 0))
		if err != nil {
			return core.Transform{}, err
		}
		if at.Subtract(from).Cross(up).IsZero() {
			return core.Transform{}, &ConfigError{Record: r, Field: "up", Reason: "parallel to the viewing direction"}
		}
		return core.LookAt(from, at, up), nil

	case r.Has("axis") || r.Has("angle"):
		axis, err := r.Vec3Or("axis", core.NewVec3(1, 0, 0))
		if err != nil {
			return core.Transform{}, err
		}
		if axis.IsZero() {
			return core.Transform{}, &ConfigError{Record: r, Field: "axis", Reason: "zero length"}
		}
		angle, err := r.FloatOr("angle", 0)
		if err != nil {
			return core.Transform{}, err
		}
		return core.Rotate(axis, angle), nil

	case r.Has("matrix"):
		values, err := r.Floats("matrix", 16)
		if err != nil {
			return core.Transform{}, err
		}
		var m [16]float64
		copy(m[:], values)
		t, err := core.FromRowMajor(m)
		if err != nil {
			return core.Transform{}, &ConfigError{Record: r, Field: "matrix", Reason: err.Error()}
		}
		return t, nil

	case r.Has("scale"):
		scale, err := r.Vec3("scale")
		if err != nil {
			return core.Transform{}, err
		}
		if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
			return core.Transform{}, &ConfigError{Record: r, Field: "scale", Reason: "singular"}
		}
		return core.Scale(scale), nil

	case r.Has("translate"):
		offset, err := r.Vec3("translate")
		if err != nil {
			return core.Transform{}, err
		}
		return core.Translate(offset), nil

	default:
		return core.Transform{}, &ConfigError{Record: r, Field: "transform", Reason: "unrecognized transform command"}
	}
}

// FindOrCreateMaterial resolves the material stored under key: absent selects
// the default material, a string names a declared material, and an object is
// parsed as an inline material
func (s *Scene) FindOrCreateMaterial(r Record, key string) (core.Material, error) {
	v, ok := r[key]
	if !ok {
		return material.DefaultMaterial(), nil
	}

	switch val := v.(type) {
	case string:
		m, ok := s.Materials[val]
		if !ok {
			return nil, &ReferenceError{Name: val, Record: r}
		}
		return m, nil
	case map[string]any:
		return s.ParseMaterial(Record(val))
	default:
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "either a material or material name"}
	}
}

// ParseMaterial builds a material from its record
func (s *Scene) ParseMaterial(r Record) (core.Material, error) {
	typ, err := r.Str("type")
	if err != nil {
		return nil, err
	}

	switch typ {
	case "lambertian":
		albedo, err := s.parseTexture(r, "albedo")
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil

	case "metal":
		albedo, err := s.parseTexture(r, "albedo")
		if err != nil {
			return nil, err
		}
		roughness, err := r.FloatOr("roughness", 0)
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, roughness), nil

	case "dielectric":
		ior, err := r.FloatOr("ior", material.DefaultIOR)
		if err != nil {
			return nil, err
		}
		return material.NewDielectric(ior), nil

	case "diffuse_light":
		emit, err := r.Vec3Or("emit", core.NewVec3(1, 1, 1))
		if err != nil {
			return nil, err
		}
		return material.NewDiffuseLight(emit), nil

	case "phong":
		albedo, err := s.parseTexture(r, "albedo")
		if err != nil {
			return nil, err
		}
		exponent, err := r.Float("exponent")
		if err != nil {
			return nil, err
		}
		return material.NewPhong(albedo, exponent), nil

	case "blend":
		if !r.Has("a") {
			return nil, &ConfigError{Record: r, Field: "a"}
		}
		if !r.Has("b") {
			return nil, &ConfigError{Record: r, Field: "b"}
		}
		a, err := s.FindOrCreateMaterial(r, "a")
		if err != nil {
			return nil, err
		}
		b, err := s.FindOrCreateMaterial(r, "b")
		if err != nil {
			return nil, err
		}
		amount, err := r.Float("amount")
		if err != nil {
			return nil, err
		}
		return material.NewBlend(a, b, amount), nil

	default:
		return nil, &ConfigError{Record: r, Field: "type", Reason: fmt.Sprintf("unknown material type %q", typ)}
	}
}

// ParseTexture builds a texture from a bare color or a texture object
func (s *Scene) ParseTexture(v any) (core.Texture, error) {
	return s.parseTexture(Record{"texture": v}, "texture")
}

func (s *Scene) parseTexture(parent Record, key string) (core.Texture, error) {
	v, ok := parent[key]
	if !ok {
		return nil, &ConfigError{Record: parent, Field: key}
	}
	if c, ok := asVec3(v); ok {
		return material.NewConstantTexture(c), nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ConfigTypeError{Record: parent, Field: key, Want: "a color or a texture object"}
	}

	r := Record(obj)
	typ, err := r.Str("type")
	if err != nil {
		return nil, err
	}

	switch typ {
	case "constant":
		c, err := r.Vec3Or("color", core.Splat(material.DefaultAlbedo))
		if err != nil {
			return nil, err
		}
		return material.NewConstantTexture(c), nil

	case "checker":
		scale, err := r.Float("scale")
		if err != nil {
			return nil, err
		}
		even, err := s.parseTexture(r, "even")
		if err != nil {
			return nil, err
		}
		odd, err := s.parseTexture(r, "odd")
		if err != nil {
			return nil, err
		}
		return material.NewCheckerTexture(scale, even, odd), nil

	case "marble":
		scale, err := r.Float("scale")
		if err != nil {
			return nil, err
		}
		veins, err := s.parseTexture(r, "veins")
		if err != nil {
			return nil, err
		}
		base, err := s.parseTexture(r, "base")
		if err != nil {
			return nil, err
		}
		return material.NewMarbleTexture(scale, veins, base), nil

	case "image":
		filename, err := r.Str("filename")
		if err != nil {
			return nil, err
		}
		tex, err := loaders.LoadImageTexture(s.resolve(filename))
		if err != nil {
			return nil, fmt.Errorf("image texture %q: %w", filename, err)
		}
		return tex, nil

	default:
		return nil, &ConfigError{Record: r, Field: "type", Reason: fmt.Sprintf("unknown texture type %q", typ)}
	}
}

// ParseSurface builds the surfaces described by one record. Meshes expand to
// one surface per triangle.
func (s *Scene) ParseSurface(r Record) ([]core.Surface, error) {
	typ, err := r.Str("type")
	if err != nil {
		return nil, err
	}

	mat, err := s.FindOrCreateMaterial(r, "material")
	if err != nil {
		return nil, err
	}

	transform := core.IdentityTransform()
	if r.Has("transform") {
		if transform, err = ParseTransform(r["transform"]); err != nil {
			return nil, err
		}
	}

	var data geometry.MeshData
	switch typ {
	case "sphere":
		radius, err := r.FloatOr("radius", 1)
		if err != nil {
			return nil, err
		}
		if radius <= 0 {
			return nil, &ConfigError{Record: r, Field: "radius", Reason: "must be positive"}
		}
		return []core.Surface{geometry.NewSphere(radius, mat, transform)}, nil

	case "quad":
		width, height := 1.0, 1.0
		if size, ok := r["size"].(float64); ok {
			width, height = size, size
		} else if r.Has("size") {
			wh, err := r.Floats("size", 2)
			if err != nil {
				return nil, err
			}
			width, height = wh[0], wh[1]
		}
		data = geometry.QuadData(width, height)

	case "mesh":
		if data, err = s.parseMeshData(r); err != nil {
			return nil, err
		}

	default:
		return nil, &ConfigError{Record: r, Field: "type", Reason: fmt.Sprintf("unknown surface type %q", typ)}
	}

	if err := validateMeshData(r, data); err != nil {
		return nil, err
	}
	return geometry.NewMesh(data, mat, transform).Triangles(), nil
}

// parseMeshData loads a mesh file or reads inline vertex data
func (s *Scene) parseMeshData(r Record) (geometry.MeshData, error) {
	if r.Has("filename") {
		filename, err := r.Str("filename")
		if err != nil {
			return geometry.MeshData{}, err
		}

		var data geometry.MeshData
		path := s.resolve(filename)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".obj":
			data, err = loaders.LoadOBJ(path, s.logger)
		case ".ply":
			data, err = loaders.LoadPLY(path, s.logger)
		default:
			return data, &ConfigError{Record: r, Field: "filename", Reason: "unsupported mesh format"}
		}
		if err != nil {
			return data, fmt.Errorf("mesh %q: %w", filename, err)
		}
		return data, nil
	}

	var data geometry.MeshData
	var err error
	if data.Vertices, err = vec3List(r, "vertices", true); err != nil {
		return data, err
	}
	if data.Normals, err = vec3List(r, "normals", false); err != nil {
		return data, err
	}
	if data.UVs, err = vec2List(r, "uvs"); err != nil {
		return data, err
	}
	if data.Faces, err = faceList(r, "faces"); err != nil {
		return data, err
	}
	return data, nil
}

// validateMeshData rejects data that geometry.NewMesh would panic on
func validateMeshData(r Record, data geometry.MeshData) error {
	if len(data.Normals) != 0 && len(data.Normals) != len(data.Vertices) {
		return &ConfigError{Record: r, Field: "normals", Reason: "need one normal per vertex"}
	}
	if len(data.UVs) != 0 && len(data.UVs) != len(data.Vertices) {
		return &ConfigError{Record: r, Field: "uvs", Reason: "need one uv per vertex"}
	}
	for i, f := range data.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(data.Vertices) {
				return &ConfigError{Record: r, Field: "faces", Reason: fmt.Sprintf("face %d references vertex %d of %d", i, idx, len(data.Vertices))}
			}
		}
	}
	return nil
}

func (s *Scene) resolve(filename string) string {
	if filepath.IsAbs(filename) || s.baseDir == "" {
		return filename
	}
	return filepath.Join(s.baseDir, filename)
}

func vec3List(r Record, key string, required bool) ([]core.Vec3, error) {
	v, ok := r[key]
	if !ok {
		if required {
			return nil, &ConfigError{Record: r, Field: key}
		}
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of 3-vectors"}
	}
	out := make([]core.Vec3, len(list))
	for i, item := range list {
		values, ok := asFloats(item)
		if !ok || len(values) != 3 {
			return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of 3-vectors"}
		}
		out[i] = core.NewVec3(values[0], values[1], values[2])
	}
	return out, nil
}

func vec2List(r Record, key string) ([]core.Vec2, error) {
	v, ok := r[key]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of 2-vectors"}
	}
	out := make([]core.Vec2, len(list))
	for i, item := range list {
		values, ok := asFloats(item)
		if !ok || len(values) != 2 {
			return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of 2-vectors"}
		}
		out[i] = core.NewVec2(values[0], values[1])
	}
	return out, nil
}

func faceList(r Record, key string) ([][3]int, error) {
	v, ok := r[key]
	if !ok {
		return nil, &ConfigError{Record: r, Field: key}
	}
	list, ok := v.([]any)
	if !ok {
		return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of index triples"}
	}
	out := make([][3]int, len(list))
	for i, item := range list {
		values, ok := asFloats(item)
		if !ok || len(values) != 3 {
			return nil, &ConfigTypeError{Record: r, Field: key, Want: "an array of index triples"}
		}
		for k, f := range values {
			if f != float64(int(f)) {
				return nil, &ConfigTypeError{Record: r, Field: key, Want: "integer vertex indices"}
			}
			out[i][k] = int(f)
		}
	}
	return out, nil
}
