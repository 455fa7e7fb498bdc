package index

import "sort"

// partition groups IRIs into disjoint synonym sets.
type partition struct {
	parent map[string]string
	groups map[string][]string
}

func newPartition() *partition {
	return &partition{parent: make(map[string]string)}
}

func (p *partition) find(x string) string {
	root, ok := p.parent[x]
	if !ok {
		return x
	}
	for root != p.parent[root] {
		root = p.parent[root]
	}
	// Path compression.
	for x != root {
		next := p.parent[x]
		p.parent[x] = root
		x = next
	}
	return root
}

func (p *partition) add(x string) {
	if _, ok := p.parent[x]; !ok {
		p.parent[x] = x
	}
}

func (p *partition) union(members ...string) {
	if len(members) == 0 {
		return
	}
	p.add(members[0])
	first := p.find(members[0])
	for _, m := range members[1:] {
		p.add(m)
		root := p.find(m)
		if root == first {
			continue
		}
		// Keep the lexically smallest IRI as the root so the partition is
		// independent of axiom order.
		if root < first {
			p.parent[first] = root
			first = root
		} else {
			p.parent[root] = first
		}
	}
}

// freeze computes the sorted member list of every group. No unions may
// follow.
func (p *partition) freeze() {
	p.groups = make(map[string][]string)
	for x := range p.parent {
		root := p.find(x)
		p.groups[root] = append(p.groups[root], x)
	}
	for _, members := range p.groups {
		sort.Strings(members)
	}
}

// members returns the synonym set of x, which always contains x itself.
func (p *partition) members(x string) []string {
	if group, ok := p.groups[p.root(x)]; ok {
		return group
	}
	return []string{x}
}

// root is find without mutation, safe after freeze.
func (p *partition) root(x string) string {
	for {
		next, ok := p.parent[x]
		if !ok || next == x {
			return x
		}
		x = next
	}
}

func (p *partition) same(a, b string) bool {
	return a == b || p.root(a) == p.root(b)
}
