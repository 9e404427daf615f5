package style

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// KeyCollisionError reports two keys of one node that rename to the same key.
type KeyCollisionError struct {
	// Path is the dotted path of the node, using the original keys.
	Path    string
	First   string
	Second  string
	Renamed string
}

func (e *KeyCollisionError) Error() string {
	return fmt.Sprintf("keys %q and %q of %s both rename to %q", e.First, e.Second, displayPath(e.Path), e.Renamed)
}

// RenameKeys returns a copy of n with every key passed through fn. Key order
// is preserved. Extends paths and references are left as they are, so rename
// only resolved trees. Two keys of one node that map to the same new key fail
// with *KeyCollisionError.
func RenameKeys(n *Node, fn func(string) string) (*Node, error) {
	return renameNode(n, "", fn)
}

func renameNode(n *Node, path string, fn func(string) string) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	out := &Node{
		Extends: n.Extends,
		keys:    make([]string, 0, len(n.keys)),
		values:  make(map[string]any, len(n.values)),
	}
	origin := make(map[string]string, len(n.keys))
	for _, key := range n.keys {
		renamed := fn(key)
		if first, dup := origin[renamed]; dup {
			return nil, &KeyCollisionError{Path: path, First: first, Second: key, Renamed: renamed}
		}
		origin[renamed] = key
		value, err := renameValue(n.values[key], joinPath(path, key), fn)
		if err != nil {
			return nil, err
		}
		out.Set(renamed, value)
	}
	return out, nil
}

func renameValue(value any, path string, fn func(string) string) (any, error) {
	switch v := value.(type) {
	case *Node:
		return renameNode(v, path, fn)
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			renamed, err := renameValue(child, joinPath(path, strconv.Itoa(i)), fn)
			if err != nil {
				return nil, err
			}
			out[i] = renamed
		}
		return out, nil
	default:
		return cloneValue(value), nil
	}
}

// SnakeCase converts camelCase to snake_case by inserting an underscore
// before every upper-case letter except a leading one.
func SnakeCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
