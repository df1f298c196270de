package scripting

// ResolveServer walks an object's owning hierarchy upward until it finds the
// server root. Starting from the object's immediate owner, each step replaces
// the current reference with its own owner. The walk succeeds when a
// reference's kind equals KindServer and fails with a *ResolutionError when
// the chain is exhausted without one.
//
// An object with no owner at all fails immediately, in zero iterations.
// Resolution is a pure in-memory traversal with no I/O and no retries.
func ResolveServer(obj Scriptable) (*ServerContext, error) {
	current := obj.Owner()

	for current != nil {
		if current.Kind() == KindServer {
			return &ServerContext{Name: current.Name()}, nil
		}

		owned, ok := current.(Owned)
		if !ok {
			// Chain continues upward only through Owned references.
			break
		}
		current = owned.Owner()
	}

	return nil, NewResolutionError(obj)
}
