package services

import "slices"

// DetectCycles returns the identifiers of tasks found to lie on a
// dependency cycle. The traversal is an explicit-stack depth-first search,
// so adversarial dependency chains cannot exhaust the call stack.
//
// Only the task at which a back-edge is discovered is flagged, not every
// member of the cycle; this surfaces "at least one participant" rather than
// enumerating full cycle membership. Dependencies referencing identifiers
// outside the batch have no outgoing edges and terminate traversal.
func DetectCycles(tasks []TaskDescription) []string {
	adjacency := make(map[string][]string, len(tasks))
	order := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if _, seen := adjacency[t.ID]; !seen {
			order = append(order, t.ID)
		}
		adjacency[t.ID] = t.Dependencies
	}

	visited := make(map[string]bool, len(adjacency))
	flagged := make(map[string]bool)

	// frame tracks one node on the traversal stack and how many of its
	// dependencies have been examined.
	type frame struct {
		id   string
		next int
	}

	for _, root := range order {
		if visited[root] {
			continue
		}

		onStack := map[string]bool{root: true}
		visited[root] = true
		stack := []frame{{id: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := adjacency[top.id]

			if top.next >= len(deps) {
				onStack[top.id] = false
				stack = stack[:len(stack)-1]
				continue
			}

			dep := deps[top.next]
			top.next++

			if onStack[dep] {
				// Back-edge: the current node closes a cycle.
				flagged[top.id] = true
				stack = nil
				break
			}
			if !visited[dep] {
				visited[dep] = true
				onStack[dep] = true
				stack = append(stack, frame{id: dep})
			}
		}
	}

	result := make([]string, 0, len(flagged))
	for id := range flagged {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}
