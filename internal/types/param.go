package types

import "strconv"

// Context accumulates bound values for one compilation pass.
// Sub-statements compile into their parent's context so that positional order
// and named numbering stay consistent across the whole query. A Context must
// not be shared by concurrent compiles.
type Context struct {
	Parameters map[string]any
	Values     []any
	count      int
}

// NewContext creates an empty compile context.
func NewContext() *Context {
	return &Context{}
}

// AddPositional appends a value in rendering order and returns its 1-based position.
func (c *Context) AddPositional(value any) int {
	c.Values = append(c.Values, value)
	return len(c.Values)
}

// AddNamed stores a value under the next sequential name (prefix1, prefix2, ...)
// and returns that name.
func (c *Context) AddNamed(prefix string, value any) string {
	if c.Parameters == nil {
		c.Parameters = make(map[string]any)
	}
	c.count++
	name := prefix + strconv.Itoa(c.count)
	c.Parameters[name] = value
	return name
}
