package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ncobase/dashboard/version"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Version: ") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestVersionCommandJSON(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var info version.Info
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.GoVersion == "" {
		t.Error("expected go version")
	}
}

func TestServeRejectsMissingConfigFile(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"serve", "-c", "/nonexistent/dashboard.yaml"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestServeFlags(t *testing.T) {
	cmd := NewServeCommand()
	if f := cmd.Flags().ShorthandLookup("c"); f == nil || f.Name != "config" {
		t.Error("expected -c/--config flag")
	}
}
