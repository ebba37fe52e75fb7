// Package envfile seeds ffx environment files with an empty JSON object.
package envfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/vertti/make-ffx-env/pkg/result"
)

// StdoutPath is the destination that selects standard output instead of a file.
const StdoutPath = "-"

// ErrNoPath is returned when no destination was given.
var ErrNoPath = errors.New("no destination path given")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode returns the serialized empty environment: exactly `{}`, no trailing newline.
func Encode() ([]byte, error) {
	return json.Marshal(map[string]any{})
}

// Initializer writes an empty environment to Path.
type Initializer struct {
	Path   string     // destination file, or StdoutPath
	FS     FileSystem // injected for testing
	Stdout io.Writer  // used for StdoutPath; defaults to os.Stdout
}

// Run opens the destination, writes the empty environment and closes it.
// The handle is closed on every path once it has been opened.
func (i *Initializer) Run() result.Result {
	r := result.Result{
		Name: fmt.Sprintf("ffx-env: %s", displayPath(i.Path)),
	}

	if i.Path == "" {
		return r.Fail("no destination path given", ErrNoPath)
	}

	data, err := Encode()
	if err != nil {
		return r.Wrapf(err, "failed to encode environment")
	}

	if i.Path == StdoutPath {
		out := i.Stdout
		if out == nil {
			out = os.Stdout
		}
		if err := writeAll(out, data); err != nil {
			return r.Wrapf(err, "failed to write to stdout")
		}
		r.AddDetailf("wrote %d bytes", len(data))
		r.Status = result.StatusOK
		return r
	}

	w, err := i.FS.Create(i.Path)
	if err != nil {
		return r.Wrapf(err, "failed to open %s for writing", i.Path)
	}

	werr := writeAll(w, data)
	cerr := w.Close()
	if werr != nil {
		return r.Wrapf(werr, "failed to write %s", i.Path)
	}
	if cerr != nil {
		return r.Wrapf(cerr, "failed to close %s", i.Path)
	}

	r.AddDetailf("wrote %d bytes", len(data))
	r.Status = result.StatusOK
	return r
}

func writeAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}
	return nil
}

func displayPath(path string) string {
	if path == StdoutPath {
		return "<stdout>"
	}
	return path
}
