package categories

import (
	"sort"

	"bookstore/feature/bookstore/models"
)

// Node is a category in the hierarchy.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parent_id"`
	Position int     `json:"position"`
	Depth    int     `json:"depth"`
	Children []*Node `json:"children"`
}

// BuildTree arranges a flat category list into a forest.
// Roots are categories without a parent or whose parent is not in the list.
// Siblings are ordered by position, then name. Categories caught in a parent
// cycle are detached and returned as roots.
func BuildTree(flat []models.Category) []*Node {
	nodes := make(map[string]*Node, len(flat))
	ordered := make([]*Node, 0, len(flat))
	for _, c := range flat {
		n := &Node{
			ID:       c.ID,
			Name:     c.Name,
			Code:     c.Code,
			Slug:     c.Slug,
			ParentID: c.ParentID,
			Position: c.Position,
			Children: []*Node{},
		}
		nodes[c.ID] = n
		ordered = append(ordered, n)
	}
	sortNodes(ordered)

	roots := []*Node{}
	for _, n := range ordered {
		parent, ok := lookupParent(nodes, n)
		if !ok {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	visited := make(map[string]bool, len(nodes))
	for _, root := range roots {
		markDepth(root, 0, visited)
	}

	for _, n := range ordered {
		if visited[n.ID] {
			continue
		}
		if parent, ok := lookupParent(nodes, n); ok {
			parent.Children = removeChild(parent.Children, n.ID)
		}
		roots = append(roots, n)
		markDepth(n, 0, visited)
	}

	sortNodes(roots)
	return roots
}

func lookupParent(nodes map[string]*Node, n *Node) (*Node, bool) {
	if n.ParentID == nil || *n.ParentID == n.ID {
		return nil, false
	}
	parent, ok := nodes[*n.ParentID]
	return parent, ok
}

func markDepth(n *Node, depth int, visited map[string]bool) {
	if visited[n.ID] {
		return
	}
	visited[n.ID] = true
	n.Depth = depth
	for _, child := range n.Children {
		markDepth(child, depth+1, visited)
	}
}

func removeChild(children []*Node, id string) []*Node {
	out := children[:0]
	for _, c := range children {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Position != nodes[j].Position {
			return nodes[i].Position < nodes[j].Position
		}
		return nodes[i].Name < nodes[j].Name
	})
}

// Find returns the node with the given slug or id.
func Find(roots []*Node, slugOrID string) *Node {
	for _, n := range roots {
		if n.Slug == slugOrID || n.ID == slugOrID {
			return n
		}
		if found := Find(n.Children, slugOrID); found != nil {
			return found
		}
	}
	return nil
}

// Subtree returns the ids of n and all of its descendants.
func Subtree(n *Node) []string {
	ids := []string{n.ID}
	for _, child := range n.Children {
		ids = append(ids, Subtree(child)...)
	}
	return ids
}
