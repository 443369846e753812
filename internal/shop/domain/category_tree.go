package domain

import "sort"

// CategoryTree indexes categories by parent so descendant lookups do not hit
// the database once per level.
type CategoryTree struct {
	byId     map[string]Category
	children map[string][]string
	roots    []string
}

func NewCategoryTree(categories []Category) *CategoryTree {
	tree := &CategoryTree{
		byId:     make(map[string]Category, len(categories)),
		children: make(map[string][]string),
	}

	for _, category := range categories {
		tree.byId[category.Id] = category
	}

	for _, category := range categories {
		if category.ParentId == nil {
			tree.roots = append(tree.roots, category.Id)
			continue
		}

		if _, ok := tree.byId[*category.ParentId]; !ok {
			// dangling parent pointer, treat as root
			tree.roots = append(tree.roots, category.Id)
			continue
		}

		tree.children[*category.ParentId] = append(tree.children[*category.ParentId], category.Id)
	}

	for parent := range tree.children {
		sort.Strings(tree.children[parent])
	}
	sort.Strings(tree.roots)

	return tree
}

func (t *CategoryTree) Has(categoryId string) bool {
	_, ok := t.byId[categoryId]
	return ok
}

// DescendantClosure returns the requested ids together with all of their
// transitive descendants, sorted. Unknown ids are kept as they are.
// The walk visits every id at most once, so it terminates on cyclic input.
func (t *CategoryTree) DescendantClosure(categoryIds []string) []string {
	visited := make(map[string]struct{}, len(categoryIds))
	queue := make([]string, 0, len(categoryIds))

	for _, id := range categoryIds {
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		queue = append(queue, id)
	}

	maxSteps := len(t.byId) + len(queue)
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		current := queue[0]
		queue = queue[1:]

		for _, child := range t.children[current] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	closure := make([]string, 0, len(visited))
	for id := range visited {
		closure = append(closure, id)
	}
	sort.Strings(closure)

	return closure
}

// IsDescendant reports whether categoryId equals ancestorId or lies anywhere
// below it.
func (t *CategoryTree) IsDescendant(categoryId, ancestorId string) bool {
	current := categoryId
	for steps := 0; steps <= len(t.byId); steps++ {
		if current == ancestorId {
			return true
		}

		category, ok := t.byId[current]
		if !ok || category.ParentId == nil {
			return false
		}
		current = *category.ParentId
	}

	return false
}

// Forest builds the nested view starting from the root categories. Categories
// caught in a parent cycle are unreachable from any root and are left out.
func (t *CategoryTree) Forest(listingCounts map[string]int) []CategoryNode {
	visited := make(map[string]struct{}, len(t.byId))

	forest := make([]CategoryNode, 0, len(t.roots))
	for _, root := range t.roots {
		forest = append(forest, t.buildNode(root, listingCounts, visited))
	}

	return forest
}

func (t *CategoryTree) buildNode(categoryId string, listingCounts map[string]int, visited map[string]struct{}) CategoryNode {
	visited[categoryId] = struct{}{}

	node := CategoryNode{
		Category:     t.byId[categoryId],
		ListingCount: listingCounts[categoryId],
		Children:     make([]CategoryNode, 0, len(t.children[categoryId])),
	}

	for _, child := range t.children[categoryId] {
		if _, seen := visited[child]; seen {
			continue
		}
		node.Children = append(node.Children, t.buildNode(child, listingCounts, visited))
	}

	return node
}
