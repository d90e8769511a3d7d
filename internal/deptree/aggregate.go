package deptree

// Resource is the total requirement of one item across a tree
type Resource struct {
	TotalQuantity  int  `json:"total_quantity"`
	Tier           int  `json:"tier"`
	IsLeafResource bool `json:"is_leaf_resource"`
}

// Aggregate sums quantities per item name over every node of the tree,
// root included. Crafted intermediates and leaf resources both appear,
// told apart by IsLeafResource.
func Aggregate(root *Node) map[string]Resource {
	totals := make(map[string]Resource)
	if root == nil {
		return totals
	}
	accumulate(root, totals)
	return totals
}

func accumulate(n *Node, totals map[string]Resource) {
	r := totals[n.ItemName]
	r.TotalQuantity += n.Quantity
	r.Tier = n.Tier
	r.IsLeafResource = !n.Craftable
	totals[n.ItemName] = r

	for _, child := range n.Children {
		accumulate(child, totals)
	}
}

// Walk visits every node depth first, parents before children
func Walk(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	visit(root)
	for _, child := range root.Children {
		Walk(child, visit)
	}
}
