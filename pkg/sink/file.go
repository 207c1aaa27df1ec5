package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// File publishes into a directory. Each file is written to a temporary name
// and renamed into place, so readers never see a partial page.
type File struct {
	dir  string
	perm os.FileMode
}

// NewFile returns a sink rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New(errors.CodeSinkWrite).WithDetail(dir).Wrap(err)
	}
	return &File{dir: dir, perm: 0644}, nil
}

// Dir returns the root directory.
func (f *File) Dir() string {
	return f.dir
}

// Publish writes body to dir/name. Names may contain slashes but must stay
// inside the directory.
func (f *File) Publish(ctx context.Context, name string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := f.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New(errors.CodeSinkWrite).WithDetail(path).Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".htmlc-*")
	if err != nil {
		return errors.New(errors.CodeSinkWrite).WithDetail(path).Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return errors.New(errors.CodeSinkWrite).WithDetail(path).Wrap(err)
	}
	if err := tmp.Chmod(f.perm); err != nil {
		tmp.Close()
		return errors.New(errors.CodeSinkWrite).WithDetail(path).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.New(errors.CodeSinkWrite).WithDetail(path).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.New(errors.CodeSinkWrite).WithDetail(path).Wrap(err)
	}
	return nil
}

func (f *File) resolve(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if name == "" || clean == "." || filepath.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.New(errors.CodeSinkTarget).
			WithDetailf("%q is not a file name inside %s", name, f.dir)
	}
	return filepath.Join(f.dir, clean), nil
}
