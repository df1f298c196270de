package scripting

// Kind is the type discriminant for objects in an owning hierarchy.
type Kind string

// Object kinds known to the export pipeline. KindServer marks the root of an
// owning hierarchy; everything else is an exportable object or a container.
const (
	KindServer       Kind = "Server"
	KindJobServer    Kind = "JobServer"
	KindDatabase     Kind = "Database"
	KindSchema       Kind = "Schema"
	KindFolder       Kind = "Folder"
	KindJob          Kind = "Job"
	KindLogin        Kind = "Login"
	KindCredential   Kind = "Credential"
	KindLinkedServer Kind = "LinkedServer"
	KindEndpoint     Kind = "Endpoint"
	KindOperator     Kind = "Operator"
	KindProxyAccount Kind = "ProxyAccount"
	KindTable        Kind = "Table"
	KindView         Kind = "View"
	KindProcedure    Kind = "Procedure"
)

// Identifiable is anything with a name and a kind discriminant. Both
// exportable objects and the containers above them implement it.
type Identifiable interface {
	// Name returns the object's display name.
	Name() string

	// Kind returns the type discriminant used to detect the hierarchy root.
	Kind() Kind
}

// Owned exposes an object's immediate owner in the hierarchy.
// A nil owner means the object has no parent.
type Owned interface {
	Owner() Identifiable
}

// Scriptable is an object that can be exported. It is supplied by the caller
// per batch item; the pipeline never mutates it.
type Scriptable interface {
	Identifiable
	Owned

	// Script renders the object's textual definition using the supplied
	// scripting options. The options value is passed through unchanged by
	// the pipeline; interpretation is entirely up to the implementation.
	Script(opts *Options) (string, error)
}

// ServerContext is the resolved root of an object's owning hierarchy.
// It is derived, read-only, and recomputed per object.
type ServerContext struct {
	// Name identifies the server (e.g. "SQL01" or "HOST\INSTANCE").
	Name string
}
