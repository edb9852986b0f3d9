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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWorkspace_CreatesExpectedLayout(t *testing.T) {
	ws, err := newWorkspace("test-uid", WorkspaceOptions{NoCopy: true})
	require.NoError(t, err)
	defer ws.release()

	for _, dir := range []string{ws.DataDir, ws.InputDir, ws.OutputDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
}

func TestNewWorkspace_LocalRootIsStable(t *testing.T) {
	root := t.TempDir()
	ws, err := newWorkspace("stable-uid", WorkspaceOptions{NoCopy: true, Local: true, LocalRoot: root})
	require.NoError(t, err)
	defer ws.release()
	require.Equal(t, filepath.Join(root, "flow-local-stable-uid"), ws.Root)
}

func TestWithWorkspace_ReleasesOnSuccessAndFailure(t *testing.T) {
	var root string
	err := withWorkspace("uid-a", WorkspaceOptions{NoCopy: true}, func(ws *Workspace) error {
		root = ws.Root
		return nil
	})
	require.NoError(t, err)
	_, statErr := os.Stat(root)
	require.True(t, os.IsNotExist(statErr))

	boom := errors.New("boom")
	err = withWorkspace("uid-b", WorkspaceOptions{NoCopy: true}, func(ws *Workspace) error {
		root = ws.Root
		return boom
	})
	require.ErrorIs(t, err, boom)
	_, statErr = os.Stat(root)
	require.True(t, os.IsNotExist(statErr))
}

func TestCopyTree_CopiesNestedFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "a.txt"), []byte("hello"), 0o644))

	dst := t.TempDir()
	require.NoError(t, copyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "nested", "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}
