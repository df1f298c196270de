package scripting

import "fmt"

// ResolutionError indicates that no server root was found in an object's
// owning hierarchy. It carries the offending object for diagnostics.
// Resolution failures are item-scoped: the batch continues past them.
type ResolutionError struct {
	Object Scriptable
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.Object == nil {
		return "no server found in owning hierarchy"
	}
	return fmt.Sprintf("no server found in owning hierarchy of %s %q",
		e.Object.Kind(), e.Object.Name())
}

// NewResolutionError creates a new ResolutionError for the given object.
func NewResolutionError(obj Scriptable) *ResolutionError {
	return &ResolutionError{Object: obj}
}

// ScriptError indicates that an object's scripting capability failed to
// produce a definition.
type ScriptError struct {
	Name  string
	Kind  Kind
	Cause error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("scripting %s %q failed: %v", e.Kind, e.Name, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ScriptError) Unwrap() error {
	return e.Cause
}

// NewScriptError creates a new ScriptError.
func NewScriptError(name string, kind Kind, cause error) *ScriptError {
	return &ScriptError{Name: name, Kind: kind, Cause: cause}
}
