package pvector

import (
	"fmt"

	"github.com/arriqaaq/pseq/elem"
)

// TreeNode is pvector's counterpart to pseq.TreeNode: the exported
// tagged-tuple debug/round-trip format of §4.6 toTree/fromTree, here over
// the trie's {root, tail} shape rather than a finger tree's.
type TreeNode struct {
	Tag      string // "Vector" | "Node" | "Leaf"
	Size     int
	Shift    uint // meaningful only when Tag == "Vector"
	Children []TreeNode
	Leaf     elem.Element
}

// ToTree renders v as a TreeNode, reconstructing the exact root/tail shape
// fromTree expects.
func (v *PVector) ToTree() TreeNode {
	return TreeNode{
		Tag:   "Vector",
		Size:  v.count,
		Shift: v.shift,
		Children: []TreeNode{
			nodeToTagged(v.proto, v.root, v.shift),
			nodeToTagged(v.proto, v.tail, 0),
		},
	}
}

func nodeToTagged(proto elem.Protocol, n *trieNode, level uint) TreeNode {
	live := liveCount(n)
	children := make([]TreeNode, 0, live)
	if level == 0 {
		for i := 0; i < live; i++ {
			children = append(children, TreeNode{Tag: "Leaf", Size: 1, Leaf: proto.Retain(n.items[i])})
		}
	} else {
		for i := 0; i < live; i++ {
			children = append(children, nodeToTagged(proto, n.items[i].(*trieNode), level-bits))
		}
	}
	return TreeNode{Tag: "Node", Size: live, Children: children}
}

// FromTree reconstructs a PVector from a TreeNode produced by ToTree, taking
// ownership of the Leaf values it holds.
func FromTree(proto elem.Protocol, tt TreeNode) (*PVector, error) {
	if tt.Tag != "Vector" {
		return nil, fmt.Errorf("pvector: FromTree: expected tag %q, got %q", "Vector", tt.Tag)
	}
	if len(tt.Children) != 2 {
		return nil, fmt.Errorf("pvector: FromTree: Vector must have exactly 2 children, got %d", len(tt.Children))
	}
	root, err := nodeFromTagged(proto, tt.Children[0], tt.Shift)
	if err != nil {
		return nil, err
	}
	tail, err := nodeFromTagged(proto, tt.Children[1], 0)
	if err != nil {
		return nil, err
	}
	return &PVector{proto: proto, count: tt.Size, shift: tt.Shift, root: root, tail: tail}, nil
}

func nodeFromTagged(proto elem.Protocol, tt TreeNode, level uint) (*trieNode, error) {
	if tt.Tag != "Node" {
		return nil, fmt.Errorf("pvector: FromTree: expected tag %q, got %q", "Node", tt.Tag)
	}
	n := newNode()
	if level == 0 {
		for i, c := range tt.Children {
			if c.Tag != "Leaf" {
				return nil, fmt.Errorf("pvector: FromTree: expected tag %q, got %q", "Leaf", c.Tag)
			}
			n.items[i] = proto.Retain(c.Leaf)
		}
		return n, nil
	}
	for i, c := range tt.Children {
		child, err := nodeFromTagged(proto, c, level-bits)
		if err != nil {
			return nil, err
		}
		n.items[i] = child
	}
	return n, nil
}

// Reduction is pvector's counterpart to pseq.Reduction: the pickling
// support of §6.4's __reduce__, reduced to the arguments New needs to
// rebuild an equal vector elsewhere.
type Reduction struct {
	Proto elem.Protocol
	Items []elem.Element
}

// Reduce returns v's Reduction.
func (v *PVector) Reduce() Reduction { return Reduction{Proto: v.proto, Items: v.ToSlice()} }

// Rebuild is Reduce's inverse: New(r.Proto, r.Items...).
func Rebuild(r Reduction) *PVector { return New(r.Proto, r.Items...) }
