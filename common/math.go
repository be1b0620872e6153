package common

const (
	// TileSize is the edge length of a map tile in pixels.
	TileSize = 8
	// ScreenWidth and ScreenHeight are the visible viewport in pixels.
	ScreenWidth  = 240
	ScreenHeight = 160
	// SpriteHalf is the offset from an entity position to the top-left of
	// its 16x16 sprite.
	SpriteHalf = 8
)

// PingPong walks 0..n-1 and back down to 0, repeating with period 2(n-1).
// A sequence of one or no values is always 0.
func PingPong(i, n int) int {
	if n <= 1 {
		return 0
	}
	cycle := 2 * (n - 1)
	i %= cycle
	if i >= n {
		return cycle - i
	}
	return i
}
