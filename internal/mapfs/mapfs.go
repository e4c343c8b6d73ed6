/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory FileSystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

const keepFile = ".keep"

// MapFileSystem implements figtok's FileSystem on top of fstest.MapFS.
// Directories are recorded as ".keep" entries.
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.mapFS[clean(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: mfs.modTime}
}

// AddDir adds an empty directory.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.mapFS[path.Join(clean(p), keepFile)] = &fstest.MapFile{Mode: mode.Perm(), ModTime: mfs.modTime}
}

func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.mapFS.Open(clean(name))
}

func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return fs.ReadFile(mfs.mapFS, clean(name))
}

func (mfs *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = clean(name)
	if dir := path.Dir(name); dir != "." {
		if f, ok := mfs.mapFS[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("not a directory")}
		}
	}
	mfs.mapFS[name] = &fstest.MapFile{Data: slices.Clone(data), Mode: perm, ModTime: mfs.modTime}
	return nil
}

func (mfs *MapFileSystem) RemoveAll(p string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = clean(p)
	prefix := p + "/"
	for name := range mfs.mapFS {
		if name == p || strings.HasPrefix(name, prefix) {
			delete(mfs.mapFS, name)
		}
	}
	return nil
}

func (mfs *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = clean(p)
	if f, ok := mfs.mapFS[p]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	mfs.mapFS[path.Join(p, keepFile)] = &fstest.MapFile{Mode: perm.Perm(), ModTime: mfs.modTime}
	return nil
}

func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return fs.ReadDir(mfs.mapFS, clean(name))
}

func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return fs.Stat(mfs.mapFS, clean(name))
}

// Exists reports whether p is a file or a directory with any entries.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = clean(p)
	if _, ok := mfs.mapFS[p]; ok {
		return true
	}
	prefix := p + "/"
	for name := range mfs.mapFS {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Files returns the absolute paths of all regular files in lexical order.
func (mfs *MapFileSystem) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var out []string
	for name := range mfs.mapFS {
		if path.Base(name) == keepFile {
			continue
		}
		out = append(out, "/"+name)
	}
	slices.Sort(out)
	return out
}

// clean maps an absolute or relative path onto a MapFS key.
func clean(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
