package source

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

func newFile(path string, fs afero.Fs) *VFile {
	return &VFile{fs: fs, path: path}
}

func newBytes(name string, bs []byte) *VFile {
	return &VFile{name: name, bytes: bs}
}

// VFile is a loaded source, either a path on a filesystem or a fetched body.
type VFile struct {
	fs    afero.Fs
	path  string
	name  string
	bytes []byte
}

func (v *VFile) IsFile() bool {
	return v.fs != nil
}

func (v *VFile) Name() string {
	if v.IsFile() {
		return v.path
	}
	return v.name
}

func (v *VFile) Open() (afero.File, error) {
	if !v.IsFile() {
		return nil, errors.New("not a file")
	}
	return v.fs.Open(v.path)
}

func (v *VFile) Bytes() ([]byte, error) {
	if len(v.bytes) > 0 {
		return v.bytes, nil
	}

	var bs []byte
	var err error

	if v.IsFile() {
		bs, err = afero.ReadFile(v.fs, v.path)
	} else {
		err = errors.New("no file to read")
	}

	if err != nil {
		err = fmt.Errorf("vfile read failed: %w", err)
	}

	return bs, err
}
