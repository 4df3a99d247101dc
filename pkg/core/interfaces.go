package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}

// HitInfo contains information about a ray-surface intersection
type HitInfo struct {
	T        float64  // Ray parameter at the intersection
	Point    Vec3     // World-space intersection point
	GN       Vec3     // Geometric normal (unit length)
	SN       Vec3     // Shading normal (unit length)
	UV       Vec2     // Surface coordinates
	Material Material // Material of the hit surface (shared, not owned)
	Surface  Surface  // Surface that was hit (shared, not owned)
}

// ScatterRecord is the result of Material.Sample
type ScatterRecord struct {
	Attenuation Vec3 // Color attenuation carried by the sample
	Scattered   Vec3 // Sampled outgoing direction (unit length)
	IsSpecular  bool // Whether the sample came from a delta distribution
}

// ScatterResult is the result of the single-call Material.Scatter protocol
type ScatterResult struct {
	Attenuation Vec3
	Scattered   Ray
}

// Material describes how light interacts with a surface.
//
// Two protocols exist side by side: Sample/Eval/PDF for integrators that weight
// by the sampling density, and Scatter, which returns a direction together with
// an attenuation that already accounts for the density.
type Material interface {
	// Emitted returns light emitted toward the ray origin
	Emitted(ray Ray, hit *HitInfo) Vec3
	// IsEmissive reports whether the material emits light at all
	IsEmissive() bool
	// Eval returns BRDF times cosine for the pair of directions
	Eval(dirIn, scattered Vec3, hit *HitInfo) Vec3
	// PDF returns the density Sample uses to pick scattered
	PDF(dirIn, scattered Vec3, hit *HitInfo) float64
	// Sample draws an outgoing direction. False means the material has no sampling routine
	// or the sample was rejected.
	Sample(dirIn Vec3, hit *HitInfo, sampler Sampler) (ScatterRecord, bool)
	// Scatter produces a continuation ray with its attenuation
	Scatter(ray Ray, hit *HitInfo, sampler Sampler) (ScatterResult, bool)
}

// Texture maps a surface hit to a color
type Texture interface {
	Value(hit *HitInfo) Vec3
}

// Surface is anything a ray can be intersected with
type Surface interface {
	Intersect(ray Ray) (*HitInfo, bool)
	LocalBBox() AABB
	WorldBBox() AABB
}
