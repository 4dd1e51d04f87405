package remote

import "github.com/necauqua/noita-memreader/process"

// HashMapNode is one node of an MSVC std::unordered_map bucket chain,
// threaded together as a single doubly-linked list headed by the map's
// sentinel; the bucket array exists only to seek into the list faster,
// iteration always walks the list.
type HashMapNode[K process.Pod, V process.Pod] struct {
	Next  uint32
	Prev  uint32
	Key   K
	Value V
}

// Pod marks HashMapNode as fixed-layout.
func (HashMapNode[K, V]) Pod() {}

// HashMap is the map's header: the sentinel-headed linked list plus
// the bucket array metadata used only to compute seek positions.
type HashMap[K process.Pod, V process.Pod] struct {
	Sentinel  uint32
	Size      uint32
	Buckets   uint32 // pointer to the bucket array
	HashMask  uint32
	TableSize uint32
	LoadFactor float32
}

// Pod marks HashMap as fixed-layout.
func (HashMap[K, V]) Pod() {}

// ReadKeys walks the sentinel-headed linked list once around, from
// Sentinel.Next back to Sentinel, returning every decoded entry.
func (m HashMap[K, V]) ReadKeys(ref *process.Ref) ([]Pair[K, V], error) {
	head, err := ReadAt[HashMapNode[K, V]](ref, RawPtr(m.Sentinel))
	if err != nil {
		return nil, err
	}

	var out []Pair[K, V]
	for addr := head.Next; addr != m.Sentinel && addr != 0; {
		node, err := ReadAt[HashMapNode[K, V]](ref, RawPtr(addr))
		if err != nil {
			return nil, err
		}
		out = append(out, Pair[K, V]{Key: node.Key, Value: node.Value})
		addr = node.Next
	}
	return out, nil
}
