package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"
)

// rootDir is the module root relative to this package; go test runs with the
// package directory as CWD.
const rootDir = "../.."

var programs = []struct {
	name string
	want string
}{
	{"arraysum-naive", "Sum: 15\n"},
	{"arraysum", "Sum: 15\n"},
	{"fibcalc", "Fibonacci of 10 is 55\n"},
}

// buildAll compiles every program into dir concurrently and returns the
// binary path per program name.
func buildAll(t *testing.T, dir string) map[string]string {
	t.Helper()
	paths := make(map[string]string, len(programs))
	for _, p := range programs {
		bin := p.name
		if runtime.GOOS == "windows" {
			bin += ".exe"
		}
		paths[p.name] = filepath.Join(dir, bin)
	}

	var g errgroup.Group
	for _, p := range programs {
		name := p.name
		g.Go(func() error {
			cmd := exec.Command("go", "build", "-o", paths[name], "./cmd/"+name)
			cmd.Dir = rootDir
			cmd.Stderr = os.Stderr
			return cmd.Run()
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Failed to build programs: %v", err)
	}
	return paths
}

// TestPrograms_E2E verifies exact stdout, empty stderr and exit code 0 over
// repeated runs of each built binary.
func TestPrograms_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	paths := buildAll(t, t.TempDir())

	for _, p := range programs {
		p := p
		t.Run(p.name, func(t *testing.T) {
			for run := 0; run < 3; run++ {
				var stdout, stderr bytes.Buffer
				cmd := exec.Command(paths[p.name])
				cmd.Stdout = &stdout
				cmd.Stderr = &stderr
				if err := cmd.Run(); err != nil {
					t.Fatalf("run %d failed: %v\nstderr: %s", run, err, stderr.String())
				}
				if stdout.String() != p.want {
					t.Errorf("run %d stdout = %q, want %q", run, stdout.String(), p.want)
				}
				if stderr.Len() != 0 {
					t.Errorf("run %d stderr = %q, want empty", run, stderr.String())
				}
			}
		})
	}
}

// TestPrograms_ConcurrentRunsAgree runs every binary several times in
// parallel; no hidden state may make the outputs diverge.
func TestPrograms_ConcurrentRunsAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	paths := buildAll(t, t.TempDir())

	const runs = 8
	for _, p := range programs {
		outputs := make([][]byte, runs)
		var g errgroup.Group
		for i := 0; i < runs; i++ {
			i, bin := i, paths[p.name]
			g.Go(func() error {
				out, err := exec.Command(bin).Output()
				outputs[i] = out
				return err
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("%s: concurrent run failed: %v", p.name, err)
		}
		for i, out := range outputs {
			if string(out) != p.want {
				t.Errorf("%s run %d printed %q, want %q", p.name, i, out, p.want)
			}
		}
	}
}
