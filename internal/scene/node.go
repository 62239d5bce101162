// Package scene provides the minimal scene hierarchy the cube engine
// needs: nodes with a local transform, parent links, and reparenting
// that preserves the world-space transform.
package scene

// Node is a transform node in the scene hierarchy. A node's world
// transform is the composition of its parent chain.
type Node struct {
	name     string
	parent   *Node
	children []*Node

	pos Vec3
	rot Mat3
}

// NewNode creates a detached node with an identity transform.
func NewNode(name string) *Node {
	return &Node{name: name, rot: Identity()}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Parent returns the current parent, or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct children.
func (n *Node) Children() []*Node { return n.children }

// Pos returns the local position.
func (n *Node) Pos() Vec3 { return n.pos }

// Rot returns the local rotation.
func (n *Node) Rot() Mat3 { return n.rot }

// SetPos sets the local position.
func (n *Node) SetPos(p Vec3) { n.pos = p }

// SetRot sets the local rotation.
func (n *Node) SetRot(r Mat3) { n.rot = r }

// ClearTransform resets the local transform to identity.
func (n *Node) ClearTransform() {
	n.pos = Vec3{}
	n.rot = Identity()
}

// AttachTo makes parent the node's parent without adjusting the local
// transform.
func (n *Node) AttachTo(parent *Node) {
	n.detach()
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// WorldPos returns the node's position in world space.
func (n *Node) WorldPos() Vec3 {
	if n.parent == nil {
		return n.pos
	}
	return n.parent.WorldRot().MulVec(n.pos).Add(n.parent.WorldPos())
}

// WorldRot returns the node's rotation in world space.
func (n *Node) WorldRot() Mat3 {
	if n.parent == nil {
		return n.rot
	}
	return n.parent.WorldRot().Mul(n.rot)
}

// ReparentPreserveWorld moves the node under newParent, recomputing
// the local transform so the world transform is unchanged. This is the
// structural operation behind rotating a layer through a pivot.
func (n *Node) ReparentPreserveWorld(newParent *Node) {
	worldPos := n.WorldPos()
	worldRot := n.WorldRot()

	n.detach()
	n.parent = newParent
	if newParent != nil {
		newParent.children = append(newParent.children, n)
		parentRotInv := newParent.WorldRot().Transpose()
		n.pos = parentRotInv.MulVec(worldPos.Sub(newParent.WorldPos()))
		n.rot = parentRotInv.Mul(worldRot)
	} else {
		n.pos = worldPos
		n.rot = worldRot
	}
}

// SnapToLattice rounds the local transform to the nearest unit lattice
// transform. Valid only for nodes that sit on integer positions with
// quarter-turn rotations, which holds for cubies between moves.
func (n *Node) SnapToLattice() {
	n.pos = SnapVec(n.pos)
	n.rot = SnapRotation(n.rot)
}
