package main

import "testing"

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Run == nil {
		t.Error("versionCmd.Run should not be nil")
	}
}

func TestRootCommandWiring(t *testing.T) {
	wantCommands := map[string]bool{
		"export":  false,
		"history": false,
		"watch":   false,
		"version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := wantCommands[cmd.Name()]; ok {
			wantCommands[cmd.Name()] = true
		}
	}
	for name, found := range wantCommands {
		if !found {
			t.Errorf("command %q not registered on root", name)
		}
	}
}
