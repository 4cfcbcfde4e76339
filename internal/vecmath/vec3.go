package vecmath

import "math"

// Vec3 is a float64 world-space vector. Y is up; the ground plane is XZ.
// Value type, passed by value.
type Vec3 struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	Z float64 `yaml:"z" toml:"z"`
}

// Zero is the origin.
var Zero = Vec3{}

// Up is the world up axis.
var Up = Vec3{Y: 1}

// Down is the world down axis.
var Down = Vec3{Y: -1}

// New creates a Vec3.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	mag := v.Len()
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Horizontal returns v projected onto the ground plane.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// Reflect mirrors direction f about the plane with normal n: f - 2(f·n)n.
// n must be unit length.
func Reflect(f, n Vec3) Vec3 {
	return f.Sub(n.Scale(2 * f.Dot(n)))
}

// ApproxEqual reports whether each component differs by at most eps.
func ApproxEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// Forward returns the ground-plane unit direction for a yaw in degrees.
// Yaw 0 faces +Z, yaw 90 faces +X.
func Forward(yawDeg float64) Vec3 {
	rad := yawDeg * math.Pi / 180
	return Vec3{X: math.Sin(rad), Z: math.Cos(rad)}
}
