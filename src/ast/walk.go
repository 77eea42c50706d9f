package ast

// Walk visits node and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	if call, isCall := node.(*Call); isCall {
		for _, arg := range call.Args {
			Walk(arg, fn)
		}
	}
}

// FreeSymbols lists the distinct symbol names referenced by node in the order
// they first occur.
func FreeSymbols(node Node) []string {
	seen := map[string]bool{}
	names := []string{}
	Walk(node, func(n Node) bool {
		if sym, isSym := n.(*Symbol); isSym && !seen[sym.Name] {
			seen[sym.Name] = true
			names = append(names, sym.Name)
		}
		return true
	})
	return names
}

// Size counts the nodes in the tree.
func Size(node Node) int {
	count := 0
	Walk(node, func(Node) bool {
		count++
		return true
	})
	return count
}
