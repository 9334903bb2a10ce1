package pseq

import (
	"fmt"

	"github.com/arriqaaq/pseq/elem"
)

// TreeNode is the exported tagged-tuple representation of §4.6's toTree/
// fromTree debug/round-trip format: every node of the finger tree tagged
// with its kind ("Empty" | "Single" | "Deep" | "Digit" | "Node" | "Leaf"),
// its cached size, and its children in order. Leaf holds the element value
// itself (retained once on behalf of the caller, mirroring ToSlice).
type TreeNode struct {
	Tag      string
	Size     int
	Children []TreeNode
	Leaf     elem.Element
}

// ToTree renders s as a TreeNode, reconstructing the exact shape fromTree
// expects (§4.6: "fromTree must reconstruct the exact tree shape").
func (s *PSequence) ToTree() TreeNode { return treeToTagged(s.proto, s.t) }

func treeToTagged(proto elem.Protocol, t *tree) TreeNode {
	switch t.kind {
	case emptyKind:
		return TreeNode{Tag: "Empty"}
	case singleKind:
		return TreeNode{Tag: "Single", Size: t.size, Children: []TreeNode{nodeToTagged(proto, t.single)}}
	default:
		return TreeNode{
			Tag:  "Deep",
			Size: t.size,
			Children: []TreeNode{
				digitToTagged(proto, t.left),
				treeToTagged(proto, t.middle),
				digitToTagged(proto, t.right),
			},
		}
	}
}

func digitToTagged(proto elem.Protocol, d *digit) TreeNode {
	children := make([]TreeNode, len(d.children))
	for i, c := range d.children {
		children[i] = nodeToTagged(proto, c)
	}
	return TreeNode{Tag: "Digit", Size: d.size, Children: children}
}

func nodeToTagged(proto elem.Protocol, n *node) TreeNode {
	if n.kind == leafKind {
		return TreeNode{Tag: "Leaf", Size: 1, Leaf: proto.Retain(n.elt)}
	}
	children := make([]TreeNode, len(n.children))
	for i, c := range n.children {
		children[i] = nodeToTagged(proto, c)
	}
	return TreeNode{Tag: "Node", Size: n.size, Children: children}
}

// FromTree reconstructs a PSequence from a TreeNode produced by ToTree,
// taking ownership of the Leaf values it holds.
func FromTree(proto elem.Protocol, tt TreeNode) (*PSequence, error) {
	t, err := treeFromTagged(proto, tt)
	if err != nil {
		return nil, err
	}
	return wrap(proto, t), nil
}

func treeFromTagged(proto elem.Protocol, tt TreeNode) (*tree, error) {
	switch tt.Tag {
	case "Empty":
		return emptyTree, nil
	case "Single":
		if len(tt.Children) != 1 {
			return nil, fmt.Errorf("pseq: FromTree: Single must have exactly 1 child, got %d", len(tt.Children))
		}
		n, err := nodeFromTagged(proto, tt.Children[0])
		if err != nil {
			return nil, err
		}
		return newSingle(n), nil
	case "Deep":
		if len(tt.Children) != 3 {
			return nil, fmt.Errorf("pseq: FromTree: Deep must have exactly 3 children, got %d", len(tt.Children))
		}
		left, err := digitFromTagged(proto, tt.Children[0])
		if err != nil {
			return nil, err
		}
		middle, err := treeFromTagged(proto, tt.Children[1])
		if err != nil {
			return nil, err
		}
		right, err := digitFromTagged(proto, tt.Children[2])
		if err != nil {
			return nil, err
		}
		return newDeep(left, middle, right), nil
	default:
		return nil, fmt.Errorf("pseq: FromTree: unexpected tree tag %q", tt.Tag)
	}
}

func digitFromTagged(proto elem.Protocol, tt TreeNode) (*digit, error) {
	if tt.Tag != "Digit" {
		return nil, fmt.Errorf("pseq: FromTree: expected tag %q, got %q", "Digit", tt.Tag)
	}
	children := make([]*node, len(tt.Children))
	for i, c := range tt.Children {
		n, err := nodeFromTagged(proto, c)
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	return newDigit(children...), nil
}

// Reduction is the pickling support of §6.4's __reduce__: "(constructor,
// (list_of_elements,))", reduced to the arguments New needs to rebuild an
// equal sequence elsewhere.
type Reduction struct {
	Proto elem.Protocol
	Items []elem.Element
}

// Reduce returns s's Reduction.
func (s *PSequence) Reduce() Reduction { return Reduction{Proto: s.proto, Items: s.ToSlice()} }

// Rebuild is Reduce's inverse: New(r.Proto, r.Items...).
func Rebuild(r Reduction) *PSequence { return New(r.Proto, r.Items...) }

func nodeFromTagged(proto elem.Protocol, tt TreeNode) (*node, error) {
	switch tt.Tag {
	case "Leaf":
		return newLeaf(proto, tt.Leaf), nil
	case "Node":
		children := make([]*node, len(tt.Children))
		for i, c := range tt.Children {
			n, err := nodeFromTagged(proto, c)
			if err != nil {
				return nil, err
			}
			children[i] = n
		}
		return newInternal(children...), nil
	default:
		return nil, fmt.Errorf("pseq: FromTree: expected %q or %q, got %q", "Leaf", "Node", tt.Tag)
	}
}
