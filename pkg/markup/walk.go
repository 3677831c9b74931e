package markup

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback walkFunc is called for each node. If walkFunc returns a non-nil
// error, the walk stops immediately and returns that error.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	// Visit the current node.
	if err := walkFunc(root); err != nil {
		return err
	}

	// Visit children.
	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkElements walks only element nodes in pre-order.
func WalkElements(root *Node, fn WalkFunc) error {
	return Walk(root, func(n *Node) error {
		if n.IsElement() {
			return fn(n)
		}
		return nil
	})
}

// FindAll returns all nodes matching the predicate in pre-order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node

	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	Walk(root, func(node *Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByTag returns all element nodes with the given (lowercase) tag name.
func FindByTag(root *Node, tag string) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Type == NodeElement && n.Tag == tag
	})
}

// CountNodes returns the total number of nodes in the tree rooted at root.
func CountNodes(root *Node) int {
	count := 0
	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(root, func(*Node) error {
		count++
		return nil
	})
	return count
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
