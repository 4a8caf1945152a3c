package skemadef

// Parse is the primary entry point. It delegates to the component's parser
// and surfaces the full issue list as an error when validation fails.
func Parse[T any](c Component[T], v Value) (T, error) {
	var zero T
	if c == nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: "nil component"}}
	}
	r := c.Parse(v)
	if !r.IsValid() {
		return zero, r.Issues()
	}
	return r.Value(), nil
}

// ParseJSON decodes a JSON document and parses it against the component.
func ParseJSON[T any](c Component[T], data []byte) (T, error) {
	v, err := FromJSON(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return Parse(c, v)
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](c Component[T], v Value) (T, bool) {
	val, err := Parse(c, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with known-good input.
func MustParse[T any](c Component[T], v Value) T {
	val, err := Parse(c, v)
	if err != nil {
		panic(err)
	}
	return val
}

// Is reports whether v conforms to the component's schema.
func Is[T any](c Component[T], v Value) bool {
	_, err := Parse(c, v)
	return err == nil
}
