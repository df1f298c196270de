package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scribehq/sqlscribe/pkg/scripting"
)

// fileSpec is the YAML shape of an inventory file.
type fileSpec struct {
	Servers []serverSpec `yaml:"servers"`
}

type serverSpec struct {
	Name    string       `yaml:"name"`
	Objects []objectSpec `yaml:"objects"`
}

type objectSpec struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Container  string `yaml:"container"`
	Database   string `yaml:"database"`
	Schema     string `yaml:"schema"`
	Definition string `yaml:"definition"`
}

// InventoryError reports a validation problem in an inventory file.
type InventoryError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *InventoryError) Error() string {
	return fmt.Sprintf("inventory error in %s: %s", e.Field, e.Message)
}

// NewInventoryError creates a new InventoryError.
func NewInventoryError(field, message string) *InventoryError {
	return &InventoryError{Field: field, Message: message}
}

// Load reads an inventory file and returns its objects in file order, each
// with its owning hierarchy wired up to a Server root.
func Load(path string) ([]scripting.Scriptable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file %q: %w", path, err)
	}

	var doc fileSpec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file %q: %w", path, err)
	}

	if len(doc.Servers) == 0 {
		return nil, NewInventoryError("servers", "at least one server is required")
	}

	var objects []scripting.Scriptable
	for si, ss := range doc.Servers {
		if ss.Name == "" {
			return nil, NewInventoryError(
				fmt.Sprintf("servers[%d].name", si), "server name is required")
		}
		srv := &Server{name: ss.Name}

		// One container node per declared container kind, shared by the
		// server's objects so sibling objects share an owner.
		containers := make(map[string]*Container)

		for oi, spec := range ss.Objects {
			field := fmt.Sprintf("servers[%d].objects[%d]", si, oi)
			if spec.Name == "" {
				return nil, NewInventoryError(field+".name", "object name is required")
			}
			if spec.Kind == "" {
				return nil, NewInventoryError(field+".kind", "object kind is required")
			}
			kind := scripting.Kind(spec.Kind)
			if kind == scripting.KindServer {
				return nil, NewInventoryError(field+".kind",
					"objects cannot use the Server kind")
			}

			var owner scripting.Identifiable = srv
			if spec.Container != "" {
				c, ok := containers[spec.Container]
				if !ok {
					c = &Container{
						name:  spec.Container,
						kind:  scripting.Kind(spec.Container),
						owner: srv,
					}
					containers[spec.Container] = c
				}
				owner = c
			}

			objects = append(objects, &Object{
				name:       spec.Name,
				kind:       kind,
				owner:      owner,
				database:   spec.Database,
				schema:     spec.Schema,
				definition: spec.Definition,
			})
		}
	}

	return objects, nil
}
