package cubik

import (
	"fmt"

	"github.com/jaroslaw-wieczorek/cubik/internal/scene"
	"github.com/jaroslaw-wieczorek/cubik/internal/spatial"
)

// FaceID identifies one of the nine selectable rotation groups: the
// six outer layers plus the three center slices.
type FaceID int

const (
	FaceTop FaceID = iota
	FaceBottom
	FaceLeft
	FaceRight
	FaceFront
	FaceBack
	FaceCenterVertical
	FaceCenterHorizontal
	FaceCenterDouble
	faceCount
)

func (f FaceID) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceCenterVertical:
		return "center_vertical"
	case FaceCenterHorizontal:
		return "center_horizontal"
	case FaceCenterDouble:
		return "center_double"
	default:
		return "?"
	}
}

// FaceByName resolves a face's snake_case name back to its ID.
func FaceByName(name string) (FaceID, bool) {
	for id := FaceID(0); id < faceCount; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// Face is one registry entry: the command key, the quarter-turn
// rotation applied per unit direction, the member count required to
// trigger a rotation, the pivot node the layer rotates through, and
// the collision volume that selects the layer.
type Face struct {
	ID       FaceID
	Key      byte       // lowercase command key
	Rotation scene.Vec3 // HPR delta in degrees for direction +1
	Quorum   int

	pivot  *scene.Node
	volume spatial.Volume
}

// Pivot returns the face's pivot node name.
func (f *Face) Pivot() string { return f.pivot.Name() }

type faceSpec struct {
	key      byte
	rotation scene.Vec3
	quorum   int
	min, max scene.Vec3
}

// Face layout: X runs left(-) to right(+), Y front(-) to back(+),
// Z bottom(-) to top(+). Each volume is the slab holding the layer.
var faceSpecs = [faceCount]faceSpec{
	FaceTop:              {'t', scene.Vec3{X: -90}, 9, scene.Vec3{X: -1.5, Y: -1.5, Z: 0.5}, scene.Vec3{X: 1.5, Y: 1.5, Z: 1.5}},
	FaceBottom:           {'d', scene.Vec3{X: -90}, 9, scene.Vec3{X: -1.5, Y: -1.5, Z: -1.5}, scene.Vec3{X: 1.5, Y: 1.5, Z: -0.5}},
	FaceLeft:             {'l', scene.Vec3{Y: 90}, 9, scene.Vec3{X: -1.5, Y: -1.5, Z: -1.5}, scene.Vec3{X: -0.5, Y: 1.5, Z: 1.5}},
	FaceRight:            {'r', scene.Vec3{Y: -90}, 9, scene.Vec3{X: 0.5, Y: -1.5, Z: -1.5}, scene.Vec3{X: 1.5, Y: 1.5, Z: 1.5}},
	FaceFront:            {'f', scene.Vec3{Z: 90}, 9, scene.Vec3{X: -1.5, Y: -1.5, Z: -1.5}, scene.Vec3{X: 1.5, Y: -0.5, Z: 1.5}},
	FaceBack:             {'b', scene.Vec3{Z: -90}, 9, scene.Vec3{X: -1.5, Y: 0.5, Z: -1.5}, scene.Vec3{X: 1.5, Y: 1.5, Z: 1.5}},
	FaceCenterVertical:   {'v', scene.Vec3{X: -90}, 8, scene.Vec3{X: -1.5, Y: -1.5, Z: -0.5}, scene.Vec3{X: 1.5, Y: 1.5, Z: 0.5}},
	FaceCenterHorizontal: {'h', scene.Vec3{Y: 90}, 8, scene.Vec3{X: -0.5, Y: -1.5, Z: -1.5}, scene.Vec3{X: 0.5, Y: 1.5, Z: 1.5}},
	FaceCenterDouble:     {'c', scene.Vec3{Z: 90}, 8, scene.Vec3{X: -1.5, Y: -0.5, Z: -1.5}, scene.Vec3{X: 1.5, Y: 0.5, Z: 1.5}},
}

// Registry holds the nine faces. It is immutable after construction.
type Registry struct {
	faces    [faceCount]*Face
	byKey    map[byte]*Face
	byVolume map[string]*Face
}

// newRegistry builds the registry with pivots attached under root.
// keyOverrides rebinds command keys per face; nil keeps the defaults.
// Any malformed entry is fatal: the registry backs every later
// operation, so construction fails instead of limping on.
func newRegistry(root *scene.Node, keyOverrides map[FaceID]byte) (*Registry, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil cube root", ErrBadRegistry)
	}

	r := &Registry{
		byKey:    make(map[byte]*Face, faceCount),
		byVolume: make(map[string]*Face, faceCount),
	}

	for id := FaceID(0); id < faceCount; id++ {
		spec := faceSpecs[id]
		key := spec.key
		if k, ok := keyOverrides[id]; ok {
			key = k
		}
		key = lowerByte(key)
		if key < 'a' || key > 'z' {
			return nil, fmt.Errorf("%w: face %s bound to non-letter key %q", ErrBadRegistry, id, key)
		}
		if other, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("%w: key %q bound to both %s and %s", ErrBadRegistry, key, other.ID, id)
		}

		pivot := scene.NewNode(id.String() + "_pivot")
		pivot.AttachTo(root)

		face := &Face{
			ID:       id,
			Key:      key,
			Rotation: spec.rotation,
			Quorum:   spec.quorum,
			pivot:    pivot,
			volume: spatial.Volume{
				Name: id.String(),
				Box:  spatial.Box{Min: spec.min, Max: spec.max},
			},
		}
		r.faces[id] = face
		r.byKey[key] = face
		r.byVolume[face.volume.Name] = face
	}

	return r, nil
}

// Faces returns the faces in fixed registry order.
func (r *Registry) Faces() []*Face {
	return r.faces[:]
}

// ByKey resolves a command key (either case) to its face, or nil.
func (r *Registry) ByKey(key byte) *Face {
	return r.byKey[lowerByte(key)]
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
