// Package scripting defines the object model consumed by the export pipeline.
//
// A Scriptable is an opaque handle to a database object (a job, a login, a
// stored procedure) that knows how to render its own T-SQL definition given a
// set of scripting Options. Objects form an owning hierarchy: every object
// exposes its immediate owner, and the chain terminates at a Server.
//
// # Root Resolution
//
// The export pipeline needs the owning server of each object to derive output
// filenames and header metadata. ResolveServer walks the owner chain:
//
//	job, _ := inventory.Load("servers.yaml")
//	server, err := scripting.ResolveServer(job)
//	if err != nil {
//	    // no Server ancestor: the object cannot be exported
//	}
//	fmt.Println(server.Name)
//
// Resolution is a pure in-memory traversal. There is no I/O, no caching
// across objects, and no retry.
//
// # Scripting Options
//
// Options is an immutable configuration value passed through to each object's
// Script method. The pipeline itself never reads or modifies it; it only
// carries it. Construct one with DefaultOptions or load it from a YAML file
// with LoadOptions.
package scripting
