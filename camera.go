package cubik

import "github.com/jaroslaw-wieczorek/cubik/internal/scene"

// CameraView is a named camera orientation in HPR degrees.
type CameraView struct {
	Name string
	Hpr  scene.Vec3
}

// DefaultView is the orientation the camera starts in.
var DefaultView = CameraView{Name: "Front"}

var cameraPresets = map[byte]CameraView{
	'1': {Name: "Front", Hpr: scene.Vec3{}},
	'2': {Name: "Back", Hpr: scene.Vec3{Y: 180, Z: 180}},
	'3': {Name: "Left", Hpr: scene.Vec3{X: 90}},
	'4': {Name: "Right", Hpr: scene.Vec3{X: -90}},
	'5': {Name: "Top", Hpr: scene.Vec3{Y: 90}},
	'6': {Name: "Bottom", Hpr: scene.Vec3{Y: -90}},
}

// SelectView maps a preset key onto a camera orientation. Keys 1-6
// are fixed viewpoints; 7 is relative, rotating the current view to
// the opposite side by a fixed roll offset. It is a pure function of
// the current view and the key; unknown keys return current unchanged.
func SelectView(current CameraView, key byte) (CameraView, bool) {
	if v, ok := cameraPresets[key]; ok {
		return v, true
	}
	if key == '7' {
		hpr := current.Hpr
		hpr.Z -= 90
		return CameraView{Name: "Opposite side", Hpr: hpr}, true
	}
	return current, false
}

// Camera holds the current view and applies preset selections. It has
// no interaction with cube state.
type Camera struct {
	view CameraView
}

func newCamera() *Camera {
	return &Camera{view: DefaultView}
}

// View returns the current camera view.
func (c *Camera) View() CameraView { return c.view }

// Select applies a preset key and returns the resulting view.
func (c *Camera) Select(key byte) CameraView {
	if v, ok := SelectView(c.view, key); ok {
		c.view = v
	}
	return c.view
}
