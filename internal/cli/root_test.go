package cli

import "testing"

func TestRootCommand_Registrations(t *testing.T) {
	want := []string{"upcoming", "schedule", "remind", "density", "run", "dashboard", "mcp", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("expected %q command to be registered", name)
		}
	}
}
