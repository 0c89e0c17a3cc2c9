// Package render turns a clock value into colored line-draw calls for the
// rotating dodecahedron wireframe.
package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/dodeca-viz/internal/config"
	"github.com/iburimskiy/dodeca-viz/internal/geometry"
)

// LineFunc draws one line between two screen-space points. The shell backs
// it with its rasterizer; tests back it with a recorder.
type LineFunc func(x0, y0, x1, y1 float64, c color.RGBA)

// Renderer draws the wireframe. The vertex table and deduplicated edge list
// are fixed at construction; the projected-point buffer is reused every
// frame so the hot path allocates nothing.
type Renderer struct {
	vertices  []geometry.Vec3
	edges     []geometry.Edge
	projected [geometry.VertexCount][2]float64
}

func New() *Renderer {
	return &Renderer{
		vertices: geometry.Vertices(),
		edges:    geometry.UniqueEdges(geometry.Faces()),
	}
}

// Edges returns the stable edge list the renderer iterates each frame.
func (r *Renderer) Edges() []geometry.Edge {
	return r.edges
}

// Frame renders one frame for the given clock value (seconds since start):
// rotates and projects all vertices once, then issues one draw call per
// unique edge with a hue derived from the clock and the edge index. The same
// clock value always reproduces the same frame.
func (r *Renderer) Frame(clock float64, width, height int, draw LineFunc) {
	angleX := clock * config.RotationSpeedX
	angleY := clock * config.RotationSpeedY
	angleZ := clock * config.RotationSpeedZ

	for i, v := range r.vertices {
		x, y := v.Rotate(angleX, angleY, angleZ).Project(
			width, height,
			config.CameraDistance, config.ProjectionScale, config.MinProjectionDepth,
		)
		r.projected[i][0] = x
		r.projected[i][1] = y
	}

	for i, e := range r.edges {
		hue := math.Mod(clock*config.HueCycleSpeed+float64(i)*config.HueOffsetPerEdge, 360)
		c := HSVToRGB(hue, config.Saturation, config.Value)
		draw(
			r.projected[e.A][0], r.projected[e.A][1],
			r.projected[e.B][0], r.projected[e.B][1],
			c,
		)
	}
}
