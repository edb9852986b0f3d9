// Copyright (c) 2017-2020 Uber Technologies Inc.
// Portions of the Software are attributed to Copyright (c) 2020 Temporal Technologies Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package internal

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

const (
	workspaceDataDir   = "data"
	workspaceStoreDir  = "store"
	workspaceInputDir  = "input"
	workspaceOutputDir = "output"
)

// Workspace is the scratch tree an Actor assembles for one activity
// execution: a copy of the current working tree under data/, plus an
// input/output area under store/ the Artifact Stager populates and drains.
type Workspace struct {
	Root      string
	DataDir   string
	StoreDir  string
	InputDir  string
	OutputDir string
}

// WorkspaceOptions controls how a Workspace is assembled.
type WorkspaceOptions struct {
	// NoCopy skips copying the current working tree into DataDir.
	NoCopy bool
	// Local roots the workspace under LocalRoot (or os.TempDir() if empty)
	// instead of a per-process random temp directory, for reproducible
	// local runs.
	Local     bool
	LocalRoot string
}

func newWorkspace(uid string, opts WorkspaceOptions) (*Workspace, error) {
	var root string
	var err error
	if opts.Local {
		base := opts.LocalRoot
		if base == "" {
			base = os.TempDir()
		}
		root = filepath.Join(base, "flow-local-"+uid)
		err = os.MkdirAll(root, 0o755)
	} else {
		root, err = ioutil.TempDir("", "flow-"+uid+"-")
	}
	if err != nil {
		return nil, err
	}

	ws := &Workspace{
		Root:      root,
		DataDir:   filepath.Join(root, workspaceDataDir),
		StoreDir:  filepath.Join(root, workspaceStoreDir),
		InputDir:  filepath.Join(root, workspaceStoreDir, workspaceInputDir),
		OutputDir: filepath.Join(root, workspaceStoreDir, workspaceOutputDir),
	}
	for _, dir := range []string{ws.DataDir, ws.InputDir, ws.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			os.RemoveAll(root)
			return nil, err
		}
	}

	if !opts.NoCopy {
		cwd, err := os.Getwd()
		if err != nil {
			os.RemoveAll(root)
			return nil, err
		}
		if err := copyTree(cwd, ws.DataDir); err != nil {
			os.RemoveAll(root)
			return nil, err
		}
	}
	return ws, nil
}

func (ws *Workspace) release() error {
	return os.RemoveAll(ws.Root)
}

// withWorkspace assembles a Workspace, runs fn, and releases the workspace on
// every exit path.
func withWorkspace(uid string, opts WorkspaceOptions, fn func(*Workspace) error) (err error) {
	ws, err := newWorkspace(uid, opts)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := ws.release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn(ws)
}

func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, info.Mode())
		}
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		return ioutil.WriteFile(target, data, info.Mode())
	})
}
