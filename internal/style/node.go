// Package style provides ordered style trees and the resolution of
// inheritance ("extends") and value references within them.
package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ExtendsKey is the key under which a node names its base.
const ExtendsKey = "extends"

// refPrefix marks a string as a path into the tree.
const refPrefix = "$"

// Ref is a value that stands for the resolved value at a dotted path
// elsewhere in the same tree.
type Ref string

// RefTo builds a reference to path. A leading "$" is accepted.
func RefTo(path string) Ref {
	return Ref(strings.TrimPrefix(path, refPrefix))
}

// Path returns the dotted path the reference points at.
func (r Ref) Path() string {
	return string(r)
}

// MarshalText renders the reference as "$path".
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(refPrefix + string(r)), nil
}

// Noder is implemented by typed style records that convert to a node.
type Noder interface {
	Node() *Node
}

// Field is one key/value pair of a node literal.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Node is an insertion-ordered mapping from key to value. Values are nil,
// bool, string, numbers, encoding.TextMarshaler scalars (colours), *Node,
// []any or Ref.
type Node struct {
	// Extends is the dotted path of the base node, if any.
	Extends string

	keys   []string
	values map[string]any
}

// New builds a node from fields in order. A field keyed "extends" with a
// string value sets the base instead of a property.
func New(fields ...Field) *Node {
	n := &Node{values: make(map[string]any, len(fields))}
	for _, f := range fields {
		n.Set(f.Key, f.Value)
	}
	return n
}

// Extending builds a node whose base is path.
func Extending(path string, fields ...Field) *Node {
	n := New(fields...)
	n.Extends = strings.TrimPrefix(path, refPrefix)
	return n
}

// Set assigns key, keeping the key's original position if it exists.
func (n *Node) Set(key string, value any) *Node {
	if key == ExtendsKey {
		if s, ok := value.(string); ok {
			n.Extends = strings.TrimPrefix(s, refPrefix)
			return n
		}
	}
	if n.values == nil {
		n.values = make(map[string]any)
	}
	value = normalize(value)
	if _, exists := n.values[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
	return n
}

// Get returns the value stored at key.
func (n *Node) Get(key string) (any, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := n.values[key]
	return v, ok
}

// Child returns the nested node stored at key.
func (n *Node) Child(key string) (*Node, bool) {
	v, ok := n.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Node)
	return child, ok
}

// Delete removes key.
func (n *Node) Delete(key string) {
	if _, ok := n.values[key]; !ok {
		return
	}
	delete(n.values, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i:i], n.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Len returns the number of keys.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.keys)
}

// Lookup walks a dotted path through nested nodes and arrays. References
// are not followed. At each node the longest run of segments that names a
// key is taken first, so keys containing a dot stay addressable.
func (n *Node) Lookup(path string) (any, bool) {
	if path == "" {
		return n, true
	}
	segs := strings.Split(path, ".")
	var cur any = n
	for i := 0; i < len(segs); {
		next, used, ok := descend(cur, segs[i:])
		if !ok {
			return nil, false
		}
		cur = next
		i += used
	}
	return cur, true
}

// descend steps into cur by the leading segments and reports how many it
// consumed.
func descend(cur any, segs []string) (any, int, bool) {
	if node, ok := cur.(*Node); ok {
		for k := len(segs); k > 1; k-- {
			if v, ok := node.values[strings.Join(segs[:k], ".")]; ok {
				return v, k, true
			}
		}
	}
	next, err := step(cur, segs[0])
	if err != nil {
		return nil, 0, false
	}
	return next, 1, true
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Extends: n.Extends,
		keys:    append([]string(nil), n.keys...),
		values:  make(map[string]any, len(n.values)),
	}
	for k, v := range n.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// MarshalJSON writes keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeField := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %q: %w", key, err)
		}
		buf.Write(v)
		return nil
	}

	if n.Extends != "" {
		if err := writeField(ExtendsKey, refPrefix+n.Extends); err != nil {
			return nil, err
		}
	}
	for _, key := range n.keys {
		if err := writeField(key, n.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func normalize(value any) any {
	switch v := value.(type) {
	case *Node:
		return v
	case Noder:
		return v.Node()
	case []*Node:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = child
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = normalize(child)
		}
		return out
	default:
		return value
	}
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case *Node:
		return v.Clone()
	case []float64:
		return append([]float64(nil), v...)
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return value
	}
}
