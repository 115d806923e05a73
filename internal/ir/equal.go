package ir

// Equal reports deep structural equality of two values.
//
// Equality is exact: no numeric coercion, no case folding, no set semantics
// on arrays. Two nil values are equal; nil is not equal to Null (nil means
// "no payload", Null is an explicit null inside a payload).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		return ok && ObjectEqual(av, bv)
	default:
		return false
	}
}

// ObjectEqual reports deep equality of two objects.
// A nil map and an empty map are equal: both carry no constraints.
func ObjectEqual(a, b Object) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}
