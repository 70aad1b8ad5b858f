package utils

import (
	"net/http"
	"os"
)

type filesOnlyFS struct {
	fs http.FileSystem
}

// FilesOnly wraps fs so that directories cannot be opened, which turns
// directory listings into 404s when served through gin's StaticFS.
func FilesOnly(fs http.FileSystem) http.FileSystem {
	return filesOnlyFS{fs: fs}
}

func (f filesOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
