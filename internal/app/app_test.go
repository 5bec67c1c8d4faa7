package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	setupConfigHome(t)
	out := &bytes.Buffer{}

	if code := Run([]string{"version"}, testDeps(out)); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected version output")
	}
}

func TestRunUnknownFlag(t *testing.T) {
	setupConfigHome(t)
	out := &bytes.Buffer{}

	if code := Run([]string{"--bogus"}, testDeps(out)); code == 0 {
		t.Fatalf("expected parse failure")
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Fatalf("missing error output: %s", out.String())
	}
}

func TestRunListEmpty(t *testing.T) {
	setupConfigHome(t)
	out := &bytes.Buffer{}

	if code := Run([]string{"list"}, testDeps(out)); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "no projects generated yet") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunListAfterGeneration(t *testing.T) {
	setupConfigHome(t)
	root := t.TempDir()

	if code := Run([]string{"--path", root, "--name", "svc"}, testDeps(&bytes.Buffer{})); code != 0 {
		t.Fatalf("generation failed")
	}

	out := &bytes.Buffer{}
	if code := Run([]string{"list"}, testDeps(out)); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "svc") {
		t.Fatalf("project missing from list: %s", out.String())
	}
}

func TestEnvFileArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "separate", args: []string{"--env-file", "custom.env", "list"}, want: "custom.env"},
		{name: "equals", args: []string{"--env-file=custom.env"}, want: "custom.env"},
		{name: "absent", args: []string{"list"}, want: ""},
		{name: "dangling", args: []string{"--env-file"}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := envFileArg(tc.args); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
