package main

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_DryRun(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yml", hostDoc)
	secrets := writeFile(t, dir, "secrets.env", "TOKEN=s3cr3t\n")
	env := writeFile(t, dir, "params.env", "source=Vars\nHostParam=example.com\nsecretsEnvFile="+secrets+"\n")

	out, err := runCommand(t, newRootCommand(), "--dry-run", cfg, env, "/bin/true", "--", "-x")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	mustContain(t, out,
		"OUT host=example.com\n",
		"TOKEN "+secretMask+"\n",
		"[dry-run] /bin/true",
		"command: /bin/true -x",
		"OUT=host=example.com",
		"TOKEN="+secretMask,
	)
	if strings.Contains(out, "s3cr3t") {
		t.Errorf("secret value leaked into output:\n%s", out)
	}
}

func TestRoot_EmptySource(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yml", hostDoc)
	env := writeFile(t, dir, "params.env", "source=\n")

	out, err := runCommand(t, newRootCommand(), cfg, env, "/bin/true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustContain(t, out, "Source parameter is empty in the env file")
}

func TestRoot_ResolutionErrorAborts(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yml", hostDoc)
	env := writeFile(t, dir, "params.env", "source=Vars\n")

	out, err := runCommand(t, newRootCommand(), "--dry-run", cfg, env, "/bin/true")
	if err == nil {
		t.Fatalf("expected error, output:\n%s", out)
	}
	mustContain(t, err.Error(), "parameter ${HostParam} not found")
	if strings.Contains(out, "[dry-run]") {
		t.Error("nothing should run after a resolution failure")
	}
}

func TestRoot_RequiresThreeArgs(t *testing.T) {
	_, err := runCommand(t, newRootCommand(), "only", "two")
	if err == nil {
		t.Fatal("expected argument error")
	}
}

func TestRoot_ExecutesWithResolvedEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yml", hostDoc)
	env := writeFile(t, dir, "params.env", "source=Vars\nHostParam=example.com\n")

	out, err := runCommand(t, newRootCommand(), cfg, env, sh, "--", "-c", `echo "child:$OUT"; exit 3`)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	mustContain(t, out,
		"OUT host=example.com\n",
		"child:host=example.com\n",
		sh+" finished with status exit status 3",
	)
}

func TestRoot_ExecNotFound(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yml", hostDoc)
	env := writeFile(t, dir, "params.env", "source=Vars\nHostParam=example.com\n")

	_, err := runCommand(t, newRootCommand(), cfg, env, "/definitely/not/here")
	if err == nil {
		t.Fatal("expected error")
	}
	mustContain(t, err.Error(), "running /definitely/not/here")
}

func TestVarsCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yml", `
Vars:
  - Name: OUT
    Value: ${P.Value}
  - Name: LONG_NAME
    Value: ${Q.Value}
`)
	env := writeFile(t, dir, "params.env", "source=Vars\nLONG_NAME=direct\n")

	root := newRootCommand()
	root.AddCommand(newVarsCommand())
	out, err := runCommand(t, root, "vars", cfg, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "OUT        [procedure P]\nLONG_NAME  [parameter]\n"
	if out != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestExampleCommand_Resolves(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "example.yml")
	env := filepath.Join(dir, "example.env")

	for _, args := range [][]string{
		{"example", "-o", cfg},
		{"example", "--params", "-o", env},
	} {
		root := newRootCommand()
		root.AddCommand(newExampleCommand())
		if out, err := runCommand(t, root, args...); err != nil {
			t.Fatalf("%v: %v\n%s", args, err, out)
		}
	}

	out, err := runCommand(t, newRootCommand(), "--dry-run", cfg, env, "app")
	if err != nil {
		t.Fatalf("example does not resolve: %v\n%s", err, out)
	}
	mustContain(t, out,
		"DATABASE_URL postgres://app@localhost:5432/orders\n",
		"LOG_LEVEL debug\n",
		"FEATURE_FLAGS beta=true,region=eu-west-1\n",
	)
}
