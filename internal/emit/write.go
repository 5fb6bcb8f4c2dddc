package emit

import (
	"os"
	"path/filepath"
)

// WriteFile renders f and replaces path with the result.
func WriteFile(path string, f *File) error {
	data, err := Bytes(f)
	if err != nil {
		return err
	}
	return Replace(path, data)
}

// Replace writes data to path through a temporary file in the same
// directory, so path either keeps its old content or holds all of data.
func Replace(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
