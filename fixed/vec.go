package fixed

// Scalar is the set of component types a Vec or Rect can hold.
type Scalar interface {
	~int | ~int32
}

// Vec is a 2D vector over fixed-point numbers or integers.
type Vec[T Scalar] struct {
	X, Y T
}

// Vector is the fixed-point vector used for positions and velocities.
type Vector = Vec[Num]

// Point is an integer vector used for sprite and tile coordinates.
type Point = Vec[int]

// V builds a fixed-point vector from integers.
func V(x, y int) Vector {
	return Vector{X: FromInt(x), Y: FromInt(y)}
}

// P builds an integer point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec[T]) Neg() Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y}
}

// Swap exchanges the components; for a unit axis this yields the
// perpendicular axis.
func (v Vec[T]) Swap() Vec[T] {
	return Vec[T]{X: v.Y, Y: v.X}
}

// MulInt scales each component by an integer.
func (v Vec[T]) MulInt(k int) Vec[T] {
	return Vec[T]{X: v.X * T(k), Y: v.Y * T(k)}
}

// DivInt divides each component by an integer, truncating toward zero.
func (v Vec[T]) DivInt(k int) Vec[T] {
	return Vec[T]{X: v.X / T(k), Y: v.Y / T(k)}
}

// ManhattanDistance returns |x|+|y|. It is only meaningful for threshold
// comparisons.
func (v Vec[T]) ManhattanDistance() T {
	return abs(v.X) + abs(v.Y)
}

func (v Vec[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Hadamard multiplies two fixed-point vectors component-wise.
func Hadamard(a, b Vector) Vector {
	return Vector{X: a.X.Mul(b.X), Y: a.Y.Mul(b.Y)}
}

// Scale multiplies every component by n.
func Scale(v Vector, n Num) Vector {
	return Vector{X: v.X.Mul(n), Y: v.Y.Mul(n)}
}

// DivNum divides every component by n.
func DivNum(v Vector, n Num) Vector {
	return Vector{X: v.X.Div(n), Y: v.Y.Div(n)}
}

// Floor converts a fixed-point vector to integers, rounding toward negative
// infinity.
func Floor(v Vector) Point {
	return Point{X: v.X.Floor(), Y: v.Y.Floor()}
}

// FromPoint converts integer coordinates to fixed point.
func FromPoint(p Point) Vector {
	return V(p.X, p.Y)
}

// Magnitude returns the euclidean length.
func Magnitude(v Vector) Num {
	return (v.X.Mul(v.X) + v.Y.Mul(v.Y)).Sqrt()
}

// Normalise scales v to unit length. The zero vector normalises to zero.
func Normalise(v Vector) Vector {
	mag := Magnitude(v)
	if mag == 0 {
		return Vector{}
	}
	return DivNum(v, mag)
}
