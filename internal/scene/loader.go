package scene

import (
	"fmt"
	"io"
	"runtime"
	"sync"
)

// LoadOptions controls how LoadAll reads a set of scene files.
type LoadOptions struct {
	// Parallel loads scenes on a pool of worker goroutines.
	Parallel bool

	// Workers is the pool size. If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// SkipErrors keeps loading after a scene fails. Failed scenes are left
	// out of the result and their errors are collected.
	// When false, the first error stops loading.
	SkipErrors bool

	// Progress is called after each scene is processed, successfully or not.
	Progress func(loaded, total int)

	// ErrorLog receives one line per failed scene.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// Loaded is a scene together with the file it came from.
type Loaded struct {
	Path  string
	Scene *Scene
}

// LoadAll loads every path with Load. Successfully loaded scenes are returned
// in the order of paths regardless of which worker finished first.
func LoadAll(paths []string, opts LoadOptions) ([]Loaded, []error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if !opts.Parallel {
		return loadSerial(paths, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index int
		scene *Scene
		err   error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				s, err := Load(paths[index])
				results <- loadResult{index: index, scene: s, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	scenes := make([]*Scene, len(paths))
	var errs []error
	loaded := 0
	for result := range results {
		loaded++
		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		if result.err != nil {
			err := loadError(paths[result.index], result.err, opts.ErrorLog)
			if !opts.SkipErrors {
				// Buffered results channel lets the remaining workers drain.
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		scenes[result.index] = result.scene
	}

	out := make([]Loaded, 0, len(paths))
	for i, s := range scenes {
		if s != nil {
			out = append(out, Loaded{Path: paths[i], Scene: s})
		}
	}
	return out, errs
}

func loadSerial(paths []string, opts LoadOptions) ([]Loaded, []error) {
	out := make([]Loaded, 0, len(paths))
	var errs []error

	for i, path := range paths {
		s, err := Load(path)
		if opts.Progress != nil {
			opts.Progress(i+1, len(paths))
		}
		if err != nil {
			err = loadError(path, err, opts.ErrorLog)
			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		out = append(out, Loaded{Path: path, Scene: s})
	}
	return out, errs
}

// loadError records a failed load on the error log.
// Load already prefixes parse errors with the path.
func loadError(path string, err error, log io.Writer) error {
	if log != nil {
		fmt.Fprintf(log, "Error loading scene %s: %v\n", path, err)
	}
	return err
}
