package deptree

import (
	"fmt"
	"strconv"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/utils"
)

// MaxDepth is the deepest level expanded; the root sits at level 0
const MaxDepth = 5

// Node is one requirement in a dependency tree. IDs are derived from the
// path from the root so an item reached through two branches gets two nodes.
type Node struct {
	ID        string  `json:"id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	Level     int     `json:"level"`
	Tier      int     `json:"tier"`
	Craftable bool    `json:"craftable"`
	ImageRef  string  `json:"image_ref,omitempty"`
	Cycle     bool    `json:"cycle,omitempty"`
	Truncated bool    `json:"truncated,omitempty"`
	Children  []*Node `json:"children,omitempty"`
}

// Tree is the result of Build. Cycles and Truncated list node IDs that were
// not expanded because their item was already on the path, or because the
// depth cap was reached.
type Tree struct {
	Root      *Node    `json:"root"`
	Cycles    []string `json:"cycles,omitempty"`
	Truncated []string `json:"truncated,omitempty"`
}

type builder struct {
	lookup   domain.Lookup
	maxDepth int
	onPath   map[string]bool
	tree     *Tree
}

// Build expands rootName into its requirement tree for quantity units.
//
// Each recipe expands through its first variant only, the designer's
// primary path, even though cost and time resolution pick the cheapest one.
// Child quantity is ceil(amount × parent quantity / result amount).
func Build(rootName string, quantity int, lookup domain.Lookup) (*Tree, error) {
	return BuildDepth(rootName, quantity, lookup, MaxDepth)
}

// BuildDepth is Build with an explicit depth cap
func BuildDepth(rootName string, quantity int, lookup domain.Lookup, maxDepth int) (*Tree, error) {
	if rootName == "" {
		return nil, fmt.Errorf("%w: root item name is empty", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidInput, quantity)
	}
	_, isItem := lookup.ItemByName(rootName)
	_, hasRecipe := lookup.RecipeFor(rootName)
	if !isItem && !hasRecipe {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, rootName)
	}

	b := &builder{
		lookup:   lookup,
		maxDepth: maxDepth,
		onPath:   make(map[string]bool),
		tree:     &Tree{},
	}
	b.tree.Root = b.expand(rootName, quantity, 0, "0")
	return b.tree, nil
}

func (b *builder) expand(name string, quantity, level int, id string) *Node {
	node := &Node{ID: id, ItemName: name, Quantity: quantity, Level: level, Tier: 1}
	if item, ok := b.lookup.ItemByName(name); ok {
		node.Tier = item.Tier
		node.ImageRef = item.ImageRef
	}

	recipe, ok := b.lookup.RecipeFor(name)
	if !ok {
		return node
	}
	node.Craftable = true

	if b.onPath[name] {
		node.Cycle = true
		b.tree.Cycles = append(b.tree.Cycles, id)
		return node
	}

	variant := recipe.FirstVariant()
	if variant == nil || len(variant.Ingredients) == 0 {
		return node
	}
	if level >= b.maxDepth {
		node.Truncated = true
		b.tree.Truncated = append(b.tree.Truncated, id)
		return node
	}

	b.onPath[name] = true
	defer delete(b.onPath, name)

	node.Children = make([]*Node, 0, len(variant.Ingredients))
	for i, ing := range variant.Ingredients {
		childQty := utils.CeilDiv(ing.Quantity, quantity, recipe.ResultAmount())
		child := b.expand(ing.ItemName, childQty, level+1, id+"/"+strconv.Itoa(i))
		node.Children = append(node.Children, child)
	}
	return node
}
