package valueschema

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyStack is the path from the adjustment root to the current value. Elements are
// object keys (string) or array indexes (int).
type KeyStack []any

// Append returns a new KeyStack with k added. The receiver is never modified and the
// result never shares its backing array, so sibling branches cannot see each other's keys.
func (ks KeyStack) Append(k any) KeyStack {
	out := make(KeyStack, len(ks)+1)
	copy(out, ks)
	out[len(ks)] = k
	return out
}

// Prepend returns a new KeyStack with k in front.
func (ks KeyStack) Prepend(k any) KeyStack {
	out := make(KeyStack, 0, len(ks)+1)
	out = append(out, k)
	return append(out, ks...)
}

// Pointer renders the path as a JSON Pointer (RFC 6901). The root is "/".
func (ks KeyStack) Pointer() string {
	if len(ks) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, k := range ks {
		b.WriteByte('/')
		switch t := k.(type) {
		case int:
			b.WriteString(strconv.Itoa(t))
		case string:
			// escape '~' -> '~0', '/' -> '~1'
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(t, "~", "~0"), "/", "~1"))
		default:
			b.WriteString(fmt.Sprint(t))
		}
	}
	return b.String()
}

func (ks KeyStack) String() string { return ks.Pointer() }
