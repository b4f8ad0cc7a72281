package world

import (
	"math/rand"
)

// bspNode is a node in the binary space partition tree. Leaves are the
// candidate regions rooms get placed into.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// partition recursively splits the grid interior (inset by one tile for
// the outer border) and returns the leaf rectangles. It consumes only the
// provided RNG and touches no grid state.
func partition(rng *rand.Rand, width, height, minLeaf int) []*bspNode {
	root := &bspNode{
		x:      1,
		y:      1,
		width:  width - 2,
		height: height - 2,
	}
	splitNode(rng, root, minLeaf)

	var leaves []*bspNode
	collectLeaves(root, &leaves)
	return leaves
}

// splitNode recursively splits a node until both dimensions fall under
// twice the minimum leaf size.
func splitNode(rng *rand.Rand, node *bspNode, minLeaf int) {
	canVertical := node.width >= minLeaf*2
	canHorizontal := node.height >= minLeaf*2
	if !canVertical && !canHorizontal {
		return
	}

	// Bias the cut against the longer axis so leaves stay close to
	// square; a clearly oblong node always splits across its long side.
	var horizontal bool
	switch {
	case !canHorizontal:
		horizontal = false
	case !canVertical:
		horizontal = true
	case node.width*4 > node.height*5:
		horizontal = false
	case node.height*4 > node.width*5:
		horizontal = true
	default:
		horizontal = rng.Intn(2) == 0
	}

	var splitPos int
	if horizontal {
		splitPos = minLeaf + rng.Intn(node.height-minLeaf*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		splitPos = minLeaf + rng.Intn(node.width-minLeaf*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	splitNode(rng, node.left, minLeaf)
	splitNode(rng, node.right, minLeaf)
}

// collectLeaves walks the tree left-to-right so the leaf order is a pure
// function of the split sequence.
func collectLeaves(node *bspNode, out *[]*bspNode) {
	if node == nil {
		return
	}
	if node.isLeaf() {
		*out = append(*out, node)
		return
	}
	collectLeaves(node.left, out)
	collectLeaves(node.right, out)
}
