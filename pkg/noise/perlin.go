// Package noise provides seedable gradient (Perlin) noise for procedural textures.
package noise

import (
	"math"
	"sync/atomic"

	"github.com/df07/go-dirt/pkg/core"
)

const tableSize = 256

// DefaultSeed seeds the process-wide noise when Init is never called
const DefaultSeed int64 = 1

// DefaultTurbulenceDepth is the number of octaves summed by Turbulence
const DefaultTurbulenceDepth = 7

// Perlin holds the random gradient vectors and permutation tables.
// A Perlin value is immutable after construction and safe for concurrent use.
type Perlin struct {
	ranvec [tableSize]core.Vec3
	permX  [tableSize]int
	permY  [tableSize]int
	permZ  [tableSize]int
}

// NewPerlin builds noise tables from the sampler's stream
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		r := sampler.Get3D()
		p.ranvec[i] = core.NewVec3(-1+2*r.X, -1+2*r.Y, -1+2*r.Z).Normalize()
	}
	p.permX = generatePerm(sampler)
	p.permY = generatePerm(sampler)
	p.permZ = generatePerm(sampler)
	return p
}

// NewSeededPerlin builds noise tables from a fixed seed
func NewSeededPerlin(seed int64) *Perlin {
	return NewPerlin(core.NewSeededSampler(seed))
}

func generatePerm(sampler core.Sampler) [tableSize]int {
	var perm [tableSize]int
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates
	for i := tableSize - 1; i > 0; i-- {
		target := int(sampler.Get1D() * float64(i+1))
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns the gradient noise value at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranvec[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}
	return interpolate(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, halving the weight and doubling the
// frequency each time, and returns the absolute value of the sum
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// hermite-weighted trilinear blend of the corner gradients
func interpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

var shared atomic.Pointer[Perlin]

// Init installs the process-wide noise tables built from seed
func Init(seed int64) *Perlin {
	p := NewSeededPerlin(seed)
	shared.Store(p)
	return p
}

// Default returns the process-wide noise tables, building them from
// DefaultSeed on first use if Init was never called
func Default() *Perlin {
	if p := shared.Load(); p != nil {
		return p
	}
	shared.CompareAndSwap(nil, NewSeededPerlin(DefaultSeed))
	return shared.Load()
}
