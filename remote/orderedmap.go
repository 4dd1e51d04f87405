package remote

import "github.com/necauqua/noita-memreader/process"

// OrderedMapNode is one red-black tree node of an MSVC std::map/set:
// {left, parent, right, color+padding word, key, value}. ColorMeta is
// read through but never interpreted — its exact semantic in the
// target is not required for lookup or traversal.
type OrderedMapNode[K process.Pod, V process.Pod] struct {
	Left      uint32
	Parent    uint32
	Right     uint32
	ColorMeta uint32
	Key       K
	Value     V
}

// Pod marks OrderedMapNode as fixed-layout.
func (OrderedMapNode[K, V]) Pod() {}

// OrderedMap is the map's header: the sentinel node doubles as both
// the header (its Parent is the real root) and the tree's logical nil
// (children pointing back to it, or null, mean "no child").
type OrderedMap[K process.Pod, V process.Pod] struct {
	Sentinel uint32
	Size     uint32
}

// Pod marks OrderedMap as fixed-layout.
func (OrderedMap[K, V]) Pod() {}

// Pair is one decoded key/value entry from a container traversal.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Get descends from the sentinel's Parent (the real root), bounded to
// maxDescentIterations to defend against corrupt (cyclic) memory.
// compare(key) must return <0 if the sought key sorts before key, 0 if
// equal, >0 if after — the same contract as sort.Search's cmp.
func (m OrderedMap[K, V]) Get(ref *process.Ref, compare func(K) int) (V, bool, error) {
	var zero V
	sentinel, err := ReadAt[OrderedMapNode[K, V]](ref, RawPtr(m.Sentinel))
	if err != nil {
		return zero, false, err
	}

	addr := sentinel.Parent
	for i := 0; i < maxDescentIterations; i++ {
		if addr == 0 || addr == m.Sentinel {
			return zero, false, nil
		}
		node, err := ReadAt[OrderedMapNode[K, V]](ref, RawPtr(addr))
		if err != nil {
			return zero, false, err
		}
		switch c := compare(node.Key); {
		case c == 0:
			return node.Value, true, nil
		case c < 0:
			addr = node.Left
		default:
			addr = node.Right
		}
	}
	return zero, false, nil
}

// ReadAll performs a breadth-first traversal from the real root,
// skipping any pointer equal to the sentinel or null, and returns
// every decoded key/value pair. Unlike Get, traversal is not bounded
// by maxDescentIterations since it must visit every live node; a
// corrupt tree with a cycle back to an already-visited address is
// defended against with a seen-set instead.
func (m OrderedMap[K, V]) ReadAll(ref *process.Ref) ([]Pair[K, V], error) {
	sentinel, err := ReadAt[OrderedMapNode[K, V]](ref, RawPtr(m.Sentinel))
	if err != nil {
		return nil, err
	}

	var out []Pair[K, V]
	seen := map[uint32]bool{m.Sentinel: true}
	queue := []uint32{sentinel.Parent}

	for len(queue) > 0 {
		addr := queue[0]
		queue = queue[1:]
		if addr == 0 || seen[addr] {
			continue
		}
		seen[addr] = true

		node, err := ReadAt[OrderedMapNode[K, V]](ref, RawPtr(addr))
		if err != nil {
			return nil, err
		}
		out = append(out, Pair[K, V]{Key: node.Key, Value: node.Value})
		queue = append(queue, node.Left, node.Right)
	}
	return out, nil
}
