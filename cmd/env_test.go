// The cmd tests run the real binary against a small corpus in a temporary
// directory, so exit status, stdin handling and the journal file are all
// exercised the way a user sees them. internal/ packages carry their own
// unit tests for the pieces these tests compose.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the verse binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "verse-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "verse"
		if os.PathSeparator == '\\' {
			binaryName = "verse.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		projectRoot := filepath.Dir(mustGetwd())
		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

const testCorpus = `THE BOOK OF GENESIS

CHAPTER 1
1 In the beginning God created the heaven and the earth.
2 And the earth was without form, and void; and darkness was upon the face of the deep.
3 And God said, Let there be light: and there was light.

THE BOOK OF PSALMS

PSALM 23
1 The LORD is my shepherd; I shall not want.

THE BOOK OF JOHN

CHAPTER 11
35 Jesus wept.
`

const testAbbreviations = "GEN,GENESIS\nPS,PSALMS\nJN,JOHN\n"

// testEnv is a working directory holding Bible.txt and
// Bible_Abbreviations.csv, with VERSE_HOME pointed at a private directory.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Bible.txt"), []byte(testCorpus), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Bible_Abbreviations.csv"), []byte(testAbbreviations), 0644))

	return &testEnv{t: t, dir: dir, home: filepath.Join(dir, "home"), binary: binary}
}

// run executes verse with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("verse %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes verse and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	return e.runStdinErr("", args...)
}

// runStdin executes verse with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("verse %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes verse with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "VERSE_HOME="+e.home)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// journal returns the contents of the default journal file, or "" if it
// was never written.
func (e *testEnv) journal() string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, "verses.txt"))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(e.t, err)
	return string(data)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}
