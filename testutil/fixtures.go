/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden file helpers for figtok tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bennypowers.dev/figtok/internal/mapfs"
)

var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdata is searched from the package directory upward, since go test
// runs each package in its own directory.
var testdataRoots = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

func locate(rel string) (string, bool) {
	for _, root := range testdataRoots {
		p := filepath.Join(root, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// NewFixtureFS copies testdata/<fixtureDir> into an in-memory filesystem
// mounted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	src, ok := locate(fixtureDir)
	if !ok {
		t.Fatalf("fixture directory %s not found", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0o644)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to load fixtures from %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile reads testdata/<fixturePath>.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	p, ok := locate(fixturePath)
	if !ok {
		t.Fatalf("fixture %s not found", fixturePath)
	}
	content, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", fixturePath, err)
	}
	return content
}

// Golden compares actual with testdata/<goldenPath>.
// With -update the golden file is rewritten instead.
func Golden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()

	if *updateGolden {
		target := filepath.Join(testdataRoots[0], goldenPath)
		for _, root := range testdataRoots {
			if _, err := os.Stat(root); err == nil {
				target = filepath.Join(root, goldenPath)
				break
			}
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("failed to create directory for golden file %s: %v", goldenPath, err)
		}
		if err := os.WriteFile(target, actual, 0o644); err != nil {
			t.Fatalf("failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("updated golden file: %s", target)
		return
	}

	want := LoadFixtureFile(t, goldenPath)
	if diff := cmp.Diff(string(want), string(actual)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", goldenPath, diff)
	}
}
