package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DanglingExtendsError reports an extends or reference path that names
// nothing in the tree.
type DanglingExtendsError struct {
	// Path is the unresolvable target.
	Path string
	// From is the path of the node that referenced it.
	From   string
	Reason string
}

func (e *DanglingExtendsError) Error() string {
	return fmt.Sprintf("dangling extends %s%s from %s: %s", refPrefix, e.Path, displayPath(e.From), e.Reason)
}

// CyclicExtendsError reports a set of nodes that inherit from or reference
// each other in a loop.
type CyclicExtendsError struct {
	// Cycle lists node paths in dependency order; the first entry repeats at
	// the end.
	Cycle []string
}

func (e *CyclicExtendsError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, p := range e.Cycle {
		parts[i] = displayPath(p)
	}
	return fmt.Sprintf("cyclic extends: %s", strings.Join(parts, " -> "))
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// entryKind distinguishes the arena entries that need work.
type entryKind int

const (
	entryNode entryKind = iota
	entryArray
	entryRef
)

// entry is one non-scalar value of the tree, addressed by its dotted path.
type entry struct {
	kind entryKind
	path string
	node *Node
	arr  []any
	ref  Ref
	// target is the canonical path of the extends base or reference target.
	target    string
	hasTarget bool
	// replace swaps a resolved value into the ref's slot.
	replace func(any)
	deps    []int
}

type resolver struct {
	root    *Node
	entries []*entry
	index   map[string]int
}

// Resolve returns a copy of root in which every Ref is replaced by a copy of
// its target and every node with Extends has its base merged underneath its
// own keys. Own keys win; nested nodes merge key by key; inherited keys are
// appended after own keys. root is not modified.
//
// Resolution is two-phase: every node, array and reference is first placed
// in an arena keyed by path with explicit dependency edges, then processed in
// topological order. Cycles fail with *CyclicExtendsError and unknown paths
// with *DanglingExtendsError before any merging happens.
func Resolve(root *Node) (*Node, error) {
	r := &resolver{
		root:  root.Clone(),
		index: make(map[string]int),
	}
	r.collect()
	if err := r.link(); err != nil {
		return nil, err
	}
	order, err := r.sort()
	if err != nil {
		return nil, err
	}
	if err := r.apply(order); err != nil {
		return nil, err
	}
	return r.root, nil
}

// collect walks the tree breadth-first and registers every non-scalar.
func (r *resolver) collect() {
	r.add(&entry{kind: entryNode, path: "", node: r.root})
	for i := 0; i < len(r.entries); i++ {
		e := r.entries[i]
		switch e.kind {
		case entryNode:
			n := e.node
			for _, key := range n.keys {
				key := key
				childPath := joinPath(e.path, key)
				child := r.addValue(childPath, n.values[key], func(v any) { n.values[key] = v })
				if child >= 0 {
					e.deps = append(e.deps, child)
				}
			}
		case entryArray:
			arr := e.arr
			for idx := range arr {
				idx := idx
				childPath := joinPath(e.path, strconv.Itoa(idx))
				child := r.addValue(childPath, arr[idx], func(v any) { arr[idx] = v })
				if child >= 0 {
					e.deps = append(e.deps, child)
				}
			}
		}
	}
}

func (r *resolver) addValue(path string, value any, replace func(any)) int {
	switch v := value.(type) {
	case *Node:
		return r.add(&entry{kind: entryNode, path: path, node: v})
	case []any:
		return r.add(&entry{kind: entryArray, path: path, arr: v})
	case Ref:
		return r.add(&entry{kind: entryRef, path: path, ref: v, replace: replace})
	default:
		return -1
	}
}

func (r *resolver) add(e *entry) int {
	idx := len(r.entries)
	r.entries = append(r.entries, e)
	r.index[e.path] = idx
	return idx
}

// link turns every extends and reference into a dependency edge.
func (r *resolver) link() error {
	for _, e := range r.entries {
		var target string
		switch {
		case e.kind == entryRef:
			target = e.ref.Path()
		case e.kind == entryNode && e.node.Extends != "":
			target = e.node.Extends
		default:
			continue
		}

		canonical, value, err := r.locate(target, e.path, map[string]bool{})
		if err != nil {
			return err
		}
		if e.kind == entryNode {
			if _, ok := value.(*Node); !ok {
				if _, isRef := value.(Ref); !isRef {
					return &DanglingExtendsError{Path: target, From: e.path, Reason: "target is not an object"}
				}
			}
		}
		e.target = canonical
		e.hasTarget = true
		if idx, ok := r.index[canonical]; ok {
			e.deps = append(e.deps, idx)
		}
	}
	return nil
}

// locate maps path to the path of the value it denotes. A path that passes
// through a reference continues from the reference's target. A key missing
// from a node is looked up in the bases of the nodes walked so far,
// innermost first, since merging would copy it from there.
func (r *resolver) locate(path, from string, seen map[string]bool) (string, any, error) {
	if path == "" {
		return "", nil, &DanglingExtendsError{Path: path, From: from, Reason: "empty path"}
	}

	segs := strings.Split(path, ".")
	var cur any = r.root
	walked := make([]any, 0, len(segs))
	canonical := ""
	for i, seg := range segs {
		walked = append(walked, cur)
		next, err := step(cur, seg)
		if err != nil {
			target, value, found, ierr := r.inherited(segs, i, walked, from, seen)
			if ierr != nil {
				return "", nil, ierr
			}
			if found {
				return target, value, nil
			}
			return "", nil, &DanglingExtendsError{Path: path, From: from, Reason: err.Error()}
		}
		canonical = joinPath(canonical, seg)

		if ref, ok := next.(Ref); ok && i < len(segs)-1 {
			if seen[canonical] {
				return "", nil, &CyclicExtendsError{Cycle: []string{canonical, ref.Path(), canonical}}
			}
			seen[canonical] = true
			rest := strings.Join(segs[i+1:], ".")
			return r.locate(joinPath(ref.Path(), rest), from, seen)
		}
		cur = next
	}
	return canonical, cur, nil
}

// inherited retries a lookup that missed at segs[miss] through the extends
// base of each node in walked, where walked[j] is the value reached by
// segs[:j]. The located value is the base's, which is exactly what the merge
// would copy since the extending node has no such key of its own.
func (r *resolver) inherited(segs []string, miss int, walked []any, from string, seen map[string]bool) (string, any, bool, error) {
	for j := miss; j >= 0; j-- {
		n, ok := walked[j].(*Node)
		if !ok || n.Extends == "" {
			continue
		}
		owner := strings.Join(segs[:j], ".")
		mark := ExtendsKey + ":" + owner
		if seen[mark] {
			return "", nil, false, &CyclicExtendsError{Cycle: []string{owner, n.Extends, owner}}
		}
		seen[mark] = true
		target, value, err := r.locate(joinPath(n.Extends, strings.Join(segs[j:], ".")), from, seen)
		delete(seen, mark)

		var cyclic *CyclicExtendsError
		switch {
		case err == nil:
			return target, value, true, nil
		case errors.As(err, &cyclic):
			return "", nil, false, err
		}
	}
	return "", nil, false, nil
}

// sort orders entries so every entry follows its dependencies.
func (r *resolver) sort() ([]int, error) {
	pending := make([]int, len(r.entries))
	dependents := make([][]int, len(r.entries))
	for i, e := range r.entries {
		pending[i] = len(e.deps)
		for _, dep := range e.deps {
			dependents[dep] = append(dependents[dep], i)
		}
	}

	queue := make([]int, 0, len(r.entries))
	for i := range r.entries {
		if pending[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(r.entries))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, d := range dependents[i] {
			pending[d]--
			if pending[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(order) < len(r.entries) {
		return nil, &CyclicExtendsError{Cycle: r.findCycle(pending)}
	}
	return order, nil
}

// findCycle follows unprocessed dependencies from the first stuck entry
// until one repeats. Every stuck entry has at least one stuck dependency.
func (r *resolver) findCycle(pending []int) []string {
	start := -1
	for i := range r.entries {
		if pending[i] > 0 {
			start = i
			break
		}
	}

	visitedAt := make(map[int]int)
	var walk []int
	for cur := start; ; {
		if pos, seen := visitedAt[cur]; seen {
			cycle := make([]string, 0, len(walk)-pos+1)
			for _, idx := range walk[pos:] {
				cycle = append(cycle, r.entries[idx].path)
			}
			return append(cycle, r.entries[cur].path)
		}
		visitedAt[cur] = len(walk)
		walk = append(walk, cur)

		next := -1
		for _, dep := range r.entries[cur].deps {
			if pending[dep] > 0 {
				next = dep
				break
			}
		}
		if next < 0 {
			return []string{r.entries[cur].path}
		}
		cur = next
	}
}

func (r *resolver) apply(order []int) error {
	for _, idx := range order {
		e := r.entries[idx]
		switch e.kind {
		case entryRef:
			target, ok := r.root.Lookup(e.target)
			if !ok {
				return &DanglingExtendsError{Path: e.ref.Path(), From: e.path, Reason: "target vanished during resolution"}
			}
			e.replace(cloneValue(target))
		case entryNode:
			if !e.hasTarget {
				continue
			}
			value, ok := r.root.Lookup(e.target)
			base, isNode := value.(*Node)
			if !ok || !isNode {
				return &DanglingExtendsError{Path: e.node.Extends, From: e.path, Reason: "target is not an object"}
			}
			merge(e.node, base)
			e.node.Extends = ""
		}
	}
	return nil
}

// merge fills dst with whatever base defines and dst does not.
func merge(dst, base *Node) {
	if dst == base {
		return
	}
	for _, key := range base.keys {
		baseValue := base.values[key]
		own, exists := dst.values[key]
		if !exists {
			dst.Set(key, cloneValue(baseValue))
			continue
		}
		ownNode, ownIsNode := own.(*Node)
		baseNode, baseIsNode := baseValue.(*Node)
		if ownIsNode && baseIsNode {
			merge(ownNode, baseNode)
		}
	}
}

func step(cur any, seg string) (any, error) {
	switch v := cur.(type) {
	case *Node:
		child, ok := v.values[seg]
		if !ok {
			return nil, fmt.Errorf("key %q does not exist", seg)
		}
		return child, nil
	case []any:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, fmt.Errorf("index %q out of range", seg)
		}
		return v[idx], nil
	default:
		return nil, fmt.Errorf("key %q is not inside an object", seg)
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
