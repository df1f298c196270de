package inventory

import (
	"fmt"
	"strings"

	"scribehq/sqlscribe/pkg/scripting"
)

// Server is the root of an inventory owning hierarchy.
type Server struct {
	name string
}

// Name returns the server name.
func (s *Server) Name() string { return s.name }

// Kind returns the root marker kind.
func (s *Server) Kind() scripting.Kind { return scripting.KindServer }

// Container is an intermediate owner between an object and its server, such
// as a JobServer or a Database.
type Container struct {
	name  string
	kind  scripting.Kind
	owner scripting.Identifiable
}

// Name returns the container name.
func (c *Container) Name() string { return c.name }

// Kind returns the container's kind discriminant.
func (c *Container) Kind() scripting.Kind { return c.kind }

// Owner returns the container's owner.
func (c *Container) Owner() scripting.Identifiable { return c.owner }

// Object is an exportable database object with a captured definition.
type Object struct {
	name       string
	kind       scripting.Kind
	owner      scripting.Identifiable
	database   string
	schema     string
	definition string
}

// Name returns the object name.
func (o *Object) Name() string { return o.name }

// Kind returns the object's kind discriminant.
func (o *Object) Kind() scripting.Kind { return o.kind }

// Owner returns the object's immediate owner in the hierarchy.
func (o *Object) Owner() scripting.Identifiable { return o.owner }

// Script renders the object's stored definition honoring the scripting
// options: object headers, database context, drop statements and the batch
// separator. The definition text itself is emitted as captured.
func (o *Object) Script(opts *scripting.Options) (string, error) {
	if opts == nil {
		opts = scripting.DefaultOptions()
	}
	if strings.TrimSpace(o.definition) == "" && !opts.ScriptDrops {
		return "", fmt.Errorf("object %q has no captured definition", o.name)
	}

	sep := opts.BatchSeparator
	if sep == "" {
		sep = "GO"
	}

	var b strings.Builder

	if opts.IncludeHeaders {
		fmt.Fprintf(&b, "-- %s %s\n", o.kind, o.qualifiedName(opts))
	}

	if opts.IncludeDatabaseContext && o.database != "" {
		fmt.Fprintf(&b, "USE [%s]\n%s\n", o.database, sep)
	}

	if opts.ScriptDrops {
		fmt.Fprintf(&b, "DROP %s %s\n", strings.ToUpper(string(o.kind)), o.qualifiedName(opts))
	} else if opts.IncludeIfNotExists {
		fmt.Fprintf(&b, "IF OBJECT_ID(N'%s') IS NULL\nBEGIN\n", o.qualifiedName(opts))
		b.WriteString(strings.TrimRight(o.definition, "\n"))
		b.WriteString("\nEND\n")
	} else {
		b.WriteString(strings.TrimRight(o.definition, "\n"))
		b.WriteByte('\n')
	}

	if !opts.NoCommandTerminator {
		b.WriteString(sep)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func (o *Object) qualifiedName(opts *scripting.Options) string {
	if opts.SchemaQualify && o.schema != "" {
		return fmt.Sprintf("[%s].[%s]", o.schema, o.name)
	}
	return fmt.Sprintf("[%s]", o.name)
}
