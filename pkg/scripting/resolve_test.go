package scripting

import (
	"errors"
	"strings"
	"testing"
)

// fakeNode implements Identifiable and Owned for building owner chains.
type fakeNode struct {
	name  string
	kind  Kind
	owner Identifiable
}

func (n *fakeNode) Name() string { return n.name }

func (n *fakeNode) Kind() Kind { return n.kind }

func (n *fakeNode) Owner() Identifiable { return n.owner }

// fakeObject is a Scriptable on top of fakeNode.
type fakeObject struct {
	fakeNode
	script string
	err    error
}

func (o *fakeObject) Script(opts *Options) (string, error) {
	return o.script, o.err
}

// chain builds object -> containers... -> root where root is the last kind.
func chain(objKind Kind, kinds ...Kind) *fakeObject {
	var top Identifiable
	for i := len(kinds) - 1; i >= 0; i-- {
		top = &fakeNode{name: string(kinds[i]), kind: kinds[i], owner: top}
	}
	return &fakeObject{fakeNode: fakeNode{name: "obj", kind: objKind, owner: top}}
}

func TestResolveServer_DirectParent(t *testing.T) {
	obj := &fakeObject{fakeNode: fakeNode{
		name: "backup-job",
		kind: KindJob,
		owner: &fakeNode{name: "SQL01", kind: KindServer},
	}}

	server, err := ResolveServer(obj)
	if err != nil {
		t.Fatalf("ResolveServer() error = %v", err)
	}
	if server.Name != "SQL01" {
		t.Errorf("server.Name = %q, want %q", server.Name, "SQL01")
	}
}

func TestResolveServer_DeepChain(t *testing.T) {
	tests := []struct {
		name  string
		kinds []Kind
	}{
		{"one hop", []Kind{KindServer}},
		{"two hops", []Kind{KindJobServer, KindServer}},
		{"three hops", []Kind{KindSchema, KindDatabase, KindServer}},
		{"five hops", []Kind{KindFolder, KindFolder, KindSchema, KindDatabase, KindServer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := chain(KindJob, tt.kinds...)

			server, err := ResolveServer(obj)
			if err != nil {
				t.Fatalf("ResolveServer() error = %v", err)
			}
			if server.Name != string(KindServer) {
				t.Errorf("server.Name = %q, want %q", server.Name, KindServer)
			}
		})
	}
}

func TestResolveServer_NoOwner(t *testing.T) {
	obj := &fakeObject{fakeNode: fakeNode{name: "orphan", kind: KindLogin}}

	_, err := ResolveServer(obj)
	if err == nil {
		t.Fatal("ResolveServer() expected error for object with no owner")
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error type = %T, want *ResolutionError", err)
	}
	if resErr.Object != Scriptable(obj) {
		t.Error("ResolutionError should carry the original object")
	}
}

func TestResolveServer_ChainWithoutServer(t *testing.T) {
	obj := chain(KindJob, KindFolder, KindDatabase)

	_, err := ResolveServer(obj)
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error = %v, want *ResolutionError", err)
	}
}

func TestResolutionError_Message(t *testing.T) {
	obj := &fakeObject{fakeNode: fakeNode{name: "orphan", kind: KindLogin}}
	err := NewResolutionError(obj)

	msg := err.Error()
	if msg == "" {
		t.Fatal("error message is empty")
	}
	for _, want := range []string{"orphan", "Login"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
