package remote

import "github.com/necauqua/noita-memreader/process"

// GetByStringKey looks a key up in an ordered map keyed by an SSO
// string, the target's std::map<std::string, V> layout used for tag
// and component name indices. Unlike Get, the comparator here can't be
// a pure function of the raw key bytes alone — a heap-backed string
// key needs a remote dereference to compare — so this walks the tree
// itself instead of going through OrderedMap.Get's compare callback.
func GetByStringKey[V process.Pod](m OrderedMap[SsoString, V], ref *process.Ref, key string) (V, bool, error) {
	var zero V
	sentinel, err := ReadAt[OrderedMapNode[SsoString, V]](ref, RawPtr(m.Sentinel))
	if err != nil {
		return zero, false, err
	}

	addr := sentinel.Parent
	for i := 0; i < maxDescentIterations; i++ {
		if addr == 0 || addr == m.Sentinel {
			return zero, false, nil
		}
		node, err := ReadAt[OrderedMapNode[SsoString, V]](ref, RawPtr(addr))
		if err != nil {
			return zero, false, err
		}
		nodeKey, err := node.Key.Decode(ref)
		if err != nil {
			return zero, false, err
		}
		switch {
		case key == nodeKey:
			return node.Value, true, nil
		case key < nodeKey:
			addr = node.Left
		default:
			addr = node.Right
		}
	}
	return zero, false, nil
}
