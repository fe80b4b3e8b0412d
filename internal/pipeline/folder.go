package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mcallbosco/IMGColorSwap/internal/channels"
)

// Config controls a folder run. It is built once by the caller.
type Config struct {
	InputFolder  string
	OutputFolder string // optional: flat destination for every output
	Recursive    bool
	Order        string    // 4 letters from R, G, B, A
	Out          io.Writer // progress and per-file errors; nil discards
}

// Task is one discovered PNG and the path its corrected copy goes to.
type Task struct {
	InputPath  string
	OutputPath string
}

// Summary counts the outcome of a folder run.
type Summary struct {
	Processed int
	Failed    int
	Outputs   []string
}

// ProcessFolder remaps every PNG under cfg.InputFolder, one file at a time.
//
// An invalid order, a missing input folder or an output folder that cannot
// be created fail the whole run before any file is read. Errors on
// individual files are printed to cfg.Out and counted; they never stop the
// walk.
func ProcessFolder(cfg Config) (*Summary, error) {
	order, err := channels.ParseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	fi, err := os.Stat(cfg.InputFolder)
	if err != nil {
		return nil, fmt.Errorf("input folder: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("input folder %s is not a directory", cfg.InputFolder)
	}

	if cfg.OutputFolder != "" {
		if err := os.MkdirAll(cfg.OutputFolder, 0755); err != nil {
			return nil, fmt.Errorf("creating output folder: %w", err)
		}
	}

	summary := &Summary{}
	root := filepath.Clean(cfg.InputFolder)
	// outputs written under the input tree must not be picked up again
	written := make(map[string]struct{})

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			printError(out, path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if !cfg.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if !IsPNG(d.Name()) {
			return nil
		}
		if _, ok := written[absPath(path)]; ok {
			return nil
		}

		task := Task{InputPath: path, OutputPath: OutputPath(path, cfg.OutputFolder)}
		if _, err := RemapFile(task.InputPath, task.OutputPath, order, out); err != nil {
			printError(out, task.InputPath, err)
			summary.Failed++
			return nil
		}
		written[absPath(task.OutputPath)] = struct{}{}
		summary.Processed++
		summary.Outputs = append(summary.Outputs, task.OutputPath)
		return nil
	})
	if walkErr != nil {
		return summary, fmt.Errorf("walking %s: %w", root, walkErr)
	}
	return summary, nil
}

func printError(out io.Writer, path string, err error) {
	var derr *DecodeError
	var werr *WriteError
	switch {
	case errors.As(err, &derr):
		err = derr.Err
	case errors.As(err, &werr):
		err = fmt.Errorf("writing %s: %w", werr.Path, werr.Err)
	}
	printer := color.New(color.FgRed)
	if out != os.Stdout {
		printer.DisableColor()
	}
	printer.Fprintf(out, "Error processing %s: %v\n", path, err)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
