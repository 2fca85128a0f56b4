package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ArgumentError reports a path-variable precondition violation: wrong
// number of values for a template, or a non-scalar value where a path
// segment is required. It is raised before any network activity.
type ArgumentError struct {
	Template    string
	Position    int    // 1-based position of the violating value
	Placeholder string // placeholder name, when one corresponds
	Reason      string
}

func (e *ArgumentError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("invalid path argument %d (:%s) for %q: %s",
			e.Position, e.Placeholder, e.Template, e.Reason)
	}
	return fmt.Sprintf("invalid path arguments for %q: %s", e.Template, e.Reason)
}

// ResolvePath substitutes every ":name" segment of template, in
// declaration order, with the corresponding positional value, URL-path-
// escaped. The number of values must match the number of placeholders
// exactly and each value must be a scalar.
func ResolvePath(template string, values ...any) (string, error) {
	segments := strings.Split(template, "/")
	placeholders := 0
	for _, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			placeholders++
		}
	}
	if len(values) != placeholders {
		return "", &ArgumentError{
			Template: template,
			Reason:   fmt.Sprintf("template has %d placeholders but %d values were supplied", placeholders, len(values)),
		}
	}

	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		s, ok := scalarString(values[next])
		if !ok {
			return "", &ArgumentError{
				Template:    template,
				Position:    next + 1,
				Placeholder: name,
				Reason:      fmt.Sprintf("value of type %T is not a scalar path component", values[next]),
			}
		}
		segments[i] = url.PathEscape(s)
		next++
	}

	return strings.Join(segments, "/"), nil
}

// scalarString renders a path-variable value, accepting only scalar
// kinds. Structured values (maps, slices, structs) are rejected so that
// a misplaced parameters value fails locally instead of producing a
// garbage URL.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
