package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Writer rewrites the generated region of documentation files
type Writer struct {
	dryRun  bool
	check   bool
	color   bool
	diffOut io.Writer
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// DryRun prints the diff instead of writing
	DryRun bool
	// Check prints the diff and fails with ErrOutOfDate when the document would change
	Check bool
	// Color forces ANSI colors in printed diffs
	Color bool
	// DiffOut receives printed diffs, os.Stdout when nil
	DiffOut io.Writer
}

// Result describes what Update did
type Result struct {
	Path    string
	Changed bool
	Written bool
	Diff    string
}

// NewWriter creates a new document writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.DiffOut == nil {
		opts.DiffOut = os.Stdout
	}

	return &Writer{
		dryRun:  opts.DryRun,
		check:   opts.Check,
		color:   opts.Color,
		diffOut: opts.DiffOut,
	}
}

// Update reads the document at path, applies transform to its content and
// writes the result back atomically. Nothing is written when transform fails
// or leaves the content unchanged.
func (w *Writer) Update(path string, transform func(string) (string, error)) (*Result, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	before := string(data)

	after, err := transform(before)
	if err != nil {
		return nil, err
	}

	res := &Result{Path: target, Changed: after != before}
	if !res.Changed {
		return res, nil
	}

	if w.dryRun || w.check {
		res.Diff = UnifiedDiff(path, before, after)
		if _, err := io.WriteString(w.diffOut, Colorize(res.Diff, w.color)); err != nil {
			return nil, fmt.Errorf("failed to print diff: %w", err)
		}
		if w.check {
			return res, fmt.Errorf("%w: %s", ErrOutOfDate, path)
		}
		return res, nil
	}

	if err := writeAtomic(target, after); err != nil {
		return nil, err
	}
	res.Written = true
	return res, nil
}

// writeAtomic replaces path with content through a synced temp file, keeping
// the existing file mode.
func writeAtomic(path, content string) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending document file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if _, err := pending.WriteString(content); err != nil {
		return fmt.Errorf("write document data: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace document file: %w", err)
	}
	return nil
}
