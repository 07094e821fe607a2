package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenes writes n valid scenes, scene i holding i+1 points.
func writeScenes(t *testing.T, dir string, n int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := range paths {
		var buf bytes.Buffer
		buf.WriteString("points:\n")
		for j := 0; j <= i; j++ {
			fmt.Fprintf(&buf, "  - {x: %d, y: 0}\n", j)
		}
		paths[i] = filepath.Join(dir, fmt.Sprintf("scene%02d.yaml", i))
		require.NoError(t, os.WriteFile(paths[i], buf.Bytes(), 0o644))
	}
	return paths
}

func TestLoadAllPreservesOrder(t *testing.T) {
	paths := writeScenes(t, t.TempDir(), 12)

	for _, parallel := range []bool{true, false} {
		t.Run(fmt.Sprintf("parallel=%v", parallel), func(t *testing.T) {
			opts := DefaultLoadOptions()
			opts.Parallel = parallel
			opts.Workers = 4

			loaded, errs := LoadAll(paths, opts)
			require.Empty(t, errs)
			require.Len(t, loaded, len(paths))
			for i, l := range loaded {
				assert.Equal(t, paths[i], l.Path)
				assert.Len(t, l.Scene.Points, i+1)
			}
		})
	}
}

func TestLoadAllEmpty(t *testing.T) {
	loaded, errs := LoadAll(nil, DefaultLoadOptions())
	assert.Nil(t, loaded)
	assert.Nil(t, errs)
}

func TestLoadAllSkipErrors(t *testing.T) {
	dir := t.TempDir()
	paths := writeScenes(t, dir, 3)
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("index: quadtree\n"), 0o644))
	paths = append(paths[:1], append([]string{bad, filepath.Join(dir, "missing.yaml")}, paths[1:]...)...)

	for _, parallel := range []bool{true, false} {
		t.Run(fmt.Sprintf("parallel=%v", parallel), func(t *testing.T) {
			var log bytes.Buffer
			var calls atomic.Int32
			opts := LoadOptions{
				Parallel:   parallel,
				Workers:    2,
				SkipErrors: true,
				ErrorLog:   &log,
				Progress: func(loaded, total int) {
					calls.Add(1)
					assert.Equal(t, 5, total)
				},
			}

			loaded, errs := LoadAll(paths, opts)
			assert.Len(t, errs, 2)
			require.Len(t, loaded, 3)
			assert.Len(t, loaded[0].Scene.Points, 1)
			assert.Len(t, loaded[2].Scene.Points, 3)
			assert.EqualValues(t, 5, calls.Load())
			assert.Contains(t, log.String(), "bad.yaml")
			assert.Contains(t, log.String(), "missing.yaml")
		})
	}
}

func TestLoadAllStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("points: [\n"), 0o644))
	paths := append([]string{bad}, writeScenes(t, dir, 4)...)

	for _, parallel := range []bool{true, false} {
		t.Run(fmt.Sprintf("parallel=%v", parallel), func(t *testing.T) {
			opts := DefaultLoadOptions()
			opts.Parallel = parallel
			opts.SkipErrors = false

			loaded, errs := LoadAll(paths, opts)
			assert.Nil(t, loaded)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), "bad.yaml")
		})
	}
}
