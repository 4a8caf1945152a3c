package skemadef

// Result carries either a successfully parsed value or a non-empty list of
// issues. The zero Result is valid with the zero value; components always
// return results built through Valid or Invalid.
type Result[T any] struct {
	value  T
	issues Issues
}

// Valid wraps a successfully parsed value.
func Valid[T any](v T) Result[T] { return Result[T]{value: v} }

// Invalid wraps one or more issues. An empty issue list is normalized to a
// single parse_error so invalid results are never silently empty.
func Invalid[T any](iss ...Issue) Result[T] {
	if len(iss) == 0 {
		iss = []Issue{{Path: "/", Code: CodeParseError, Message: "invalid result with no issues"}}
	}
	return Result[T]{issues: Issues(iss)}
}

// InvalidIssues wraps an existing issue collection.
func InvalidIssues[T any](iss Issues) Result[T] { return Invalid[T](iss...) }

// IsValid reports whether the result carries a value.
func (r Result[T]) IsValid() bool { return len(r.issues) == 0 }

// Value returns the parsed value; the zero value when invalid.
func (r Result[T]) Value() T { return r.value }

// Issues returns the accumulated issues; nil when valid.
func (r Result[T]) Issues() Issues { return r.issues }

// Err returns the issues as an error, or nil when valid.
func (r Result[T]) Err() error {
	if len(r.issues) == 0 {
		return nil
	}
	return r.issues
}

// MapResult transforms the value of a valid result. Issues pass through
// unchanged. Free function because Go methods cannot add type parameters.
func MapResult[A, B any](r Result[A], fn func(A) B) Result[B] {
	if !r.IsValid() {
		return InvalidIssues[B](r.issues)
	}
	return Valid(fn(r.value))
}

// ThenResult chains a dependent parse onto a valid result.
func ThenResult[A, B any](r Result[A], fn func(A) Result[B]) Result[B] {
	if !r.IsValid() {
		return InvalidIssues[B](r.issues)
	}
	return fn(r.value)
}

// MergeIssues combines the issue lists of independent sub-results without
// short-circuiting. Containers use it to report every failing member of an
// object or array, not just the first.
func MergeIssues(results ...interface{ Err() error }) Issues {
	var out Issues
	for _, r := range results {
		if err := r.Err(); err != nil {
			if iss, ok := AsIssues(err); ok {
				out = AppendIssues(out, iss...)
			} else {
				out = AppendIssues(out, Issue{Path: "/", Code: CodeParseError, Message: err.Error()})
			}
		}
	}
	return out
}
