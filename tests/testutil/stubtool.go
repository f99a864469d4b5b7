package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const lakeScript = `#!/bin/sh
set -e
case "$1" in
  --version)
    echo "Lake version 5.0.0 (Lean version 4.9.0)"
    ;;
  new)
    mkdir -p "$2"
    printf 'name = "%s"\nversion = "0.1.0"\n' "$2" > "$2/lakefile.toml"
    ;;
  init)
    printf 'name = "%s"\nversion = "0.1.0"\n' "$(basename "$PWD")" > lakefile.toml
    ;;
  env)
    shift 2
    cat "$1"
    ;;
  *)
    :
    ;;
esac
`

const leanScript = `#!/bin/sh
case "$1" in
  --version)
    echo "Lean (version 4.9.0, x86_64-unknown-linux-gnu, commit 0000000, Release)"
    ;;
esac
`

// StubToolchain puts fake lake and lean executables on PATH for the
// duration of the test. The stubs mimic the small slice of toolchain
// behavior the adapters rely on: scaffolding writes a lakefile.toml,
// update and cache commands succeed, and env echoes the snippet back.
func StubToolchain(t *testing.T) {
	t.Helper()
	bin := t.TempDir()
	writeScript(t, filepath.Join(bin, "lake"), lakeScript)
	writeScript(t, filepath.Join(bin, "lean"), leanScript)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeScript(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
}
