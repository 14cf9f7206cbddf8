package polymorph

import "strings"

// Resolver turns a selector into a path description. Implementations pass
// inputs that are not selectors through unchanged.
type Resolver interface {
	Resolve(selector string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(selector string) (string, error)

// Resolve calls f(selector).
func (f ResolverFunc) Resolve(selector string) (string, error) {
	return f(selector)
}

var shapeTags = []string{"path", "circle", "ellipse", "rect", "polyline", "polygon"}

// IsSelector reports whether s looks like an id, class or shape tag
// selector rather than a path description.
func IsSelector(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[0] {
	case '#', '.':
		return true
	}
	lower := strings.ToLower(s)
	for _, tag := range shapeTags {
		if !strings.HasPrefix(lower, tag) {
			continue
		}
		rest := lower[len(tag):]
		if rest == "" || strings.ContainsRune("#.:[ ", rune(rest[0])) {
			return true
		}
	}
	return false
}

// simpleSelector is a tag, #id or .class selector, optionally prefixed by
// a tag: "path", "#wave", "circle.dot".
type simpleSelector struct {
	tag, id, class string
}

func parseSimpleSelector(s string) simpleSelector {
	s = strings.TrimSpace(s)
	var sel simpleSelector
	i := strings.IndexAny(s, "#.")
	if i < 0 {
		sel.tag = strings.ToLower(s)
		return sel
	}
	sel.tag = strings.ToLower(s[:i])
	if s[i] == '#' {
		sel.id = s[i+1:]
	} else {
		sel.class = s[i+1:]
	}
	return sel
}

func (sel simpleSelector) matches(tag, id, class string) bool {
	if sel.tag != "" && sel.tag != tag {
		return false
	}
	if sel.id != "" && sel.id != id {
		return false
	}
	if sel.class != "" && !containsField(class, sel.class) {
		return false
	}
	return true
}

func containsField(list, s string) bool {
	for _, f := range strings.Fields(list) {
		if f == s {
			return true
		}
	}
	return false
}
