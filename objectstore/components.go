package objectstore

import "github.com/dendritic-labs/incdbscan/pointid"

// ConnectedComponentsWithin partitions ids into BFS-connected components
// using only graph edges whose both endpoints lie in ids. If len(ids)<=1
// it returns a single component equal to ids (possibly empty), per spec.
func (s *Store) ConnectedComponentsWithin(ids map[pointid.ID]struct{}) []map[pointid.ID]struct{} {
	if len(ids) <= 1 {
		out := make(map[pointid.ID]struct{}, len(ids))
		for id := range ids {
			out[id] = struct{}{}
		}
		return []map[pointid.ID]struct{}{out}
	}

	visited := make(map[pointid.ID]struct{}, len(ids))
	var components []map[pointid.ID]struct{}

	for start := range ids {
		if _, ok := visited[start]; ok {
			continue
		}

		component := map[pointid.ID]struct{}{start: {}}
		visited[start] = struct{}{}
		queue := []pointid.ID{start}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, n := range s.Neighbors(cur) {
				if _, inSet := ids[n]; !inSet {
					continue
				}
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				component[n] = struct{}{}
				queue = append(queue, n)
			}
		}

		components = append(components, component)
	}

	return components
}
