package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/wordpad/internal/logger"
)

var (
	// ErrEmptyFilename is returned when an export target has no name.
	ErrEmptyFilename = errors.New("export: empty filename")
	// ErrInvalidFilename is returned when an export target name contains a path.
	ErrInvalidFilename = errors.New("export: filename must not contain a directory")
)

// Deliverer hands encoded bytes to the user under a suggested name and
// reports where they ended up.
type Deliverer interface {
	Deliver(ctx context.Context, name string, data []byte) (string, error)
}

// FileDeliverer writes exports into Dir, replacing any previous file of the
// same name atomically.
type FileDeliverer struct {
	Dir string
}

// ValidateFilename checks that name is a bare, non-empty filename.
func ValidateFilename(name string) error {
	if name == "" {
		return ErrEmptyFilename
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}

// Deliver writes data to Dir/name and returns the final path.
func (d FileDeliverer) Deliver(ctx context.Context, name string, data []byte) (string, error) {
	if err := ValidateFilename(name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp file in '%s': %w", dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("write '%s': %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close '%s': %w", tmpName, err)
	}

	target := filepath.Join(dir, name)
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return "", fmt.Errorf("move export into place at '%s': %w", target, err)
	}

	logger.DebugTagf("export", "FileDeliverer: wrote %d bytes to %s", len(data), target)
	return target, nil
}
