package blastradius

import "github.com/holymole/core/internal/models"

// Traverse walks upward from start with an explicit stack. It returns the
// visited nodes in first-visit order and every edge recorded on the way.
//
// A node is expanded at most once: the visited check happens on pop, so
// dependents are pushed even if already visited and their edges still get
// recorded. This keeps the walk finite on cyclic input.
func Traverse(start string, idx *ReverseIndex) ([]string, []models.Edge) {
	visited := make(map[string]struct{})
	order := []string{}
	edges := []models.Edge{}

	stack := []string{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[node]; ok {
			continue
		}
		visited[node] = struct{}{}
		order = append(order, node)

		for _, dependent := range idx.dependents[node] {
			edges = append(edges, models.Edge{From: node, To: dependent})
			stack = append(stack, dependent)
		}
	}

	return order, edges
}
