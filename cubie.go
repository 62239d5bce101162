package cubik

import (
	"math"

	"github.com/jaroslaw-wieczorek/cubik/internal/scene"
)

// GridPos is a lattice position with each component in {-1, 0, 1}.
type GridPos struct {
	X, Y, Z int
}

// Cubie is one of the 26 visible sub-cubes. Its transform lives in the
// scene hierarchy; between moves its parent is always the cube root,
// during a rotation it is temporarily parented to a face pivot.
type Cubie struct {
	node *scene.Node
	home GridPos
}

// Tag returns the cubie's color-family tag, e.g. "W" for the top
// center or "WGR" for the top-front-right corner. Tags are unique
// across the population and stable for the cubie's lifetime.
func (c *Cubie) Tag() string { return c.node.Name() }

// Home returns the lattice position the cubie was created at.
func (c *Cubie) Home() GridPos { return c.home }

// Grid returns the lattice position the cubie currently occupies.
func (c *Cubie) Grid() GridPos {
	p := c.node.WorldPos()
	return GridPos{
		X: int(math.Round(p.X)),
		Y: int(math.Round(p.Y)),
		Z: int(math.Round(p.Z)),
	}
}

// colorTag names a home position by the color families of its visible
// stickers, matching the solved orientation: white up, yellow down,
// green front, blue back, red right, orange left.
func colorTag(p GridPos) string {
	var tag []byte
	switch p.Z {
	case 1:
		tag = append(tag, 'W')
	case -1:
		tag = append(tag, 'Y')
	}
	switch p.Y {
	case -1:
		tag = append(tag, 'G')
	case 1:
		tag = append(tag, 'B')
	}
	switch p.X {
	case 1:
		tag = append(tag, 'R')
	case -1:
		tag = append(tag, 'O')
	}
	return string(tag)
}

// buildCubies creates the 26-cubie population attached to root. The
// 3x3x3 core position stays empty.
func buildCubies(root *scene.Node) []*Cubie {
	cubies := make([]*Cubie, 0, 26)
	for z := 1; z >= -1; z-- {
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				home := GridPos{X: x, Y: y, Z: z}
				node := scene.NewNode(colorTag(home))
				node.AttachTo(root)
				node.SetPos(scene.Vec3{X: float64(x), Y: float64(y), Z: float64(z)})
				cubies = append(cubies, &Cubie{node: node, home: home})
			}
		}
	}
	return cubies
}
