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
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StagerOptions controls whether staged artifacts are gzip-compressed in the
// Object Store.
type StagerOptions struct {
	Gzip bool
}

// Artifact describes one object the stager uploaded during stage-out.
type Artifact struct {
	Key    string
	Hash   string
	Length int64
}

type stager struct {
	store ObjectStore
	opts  StagerOptions
}

func newStager(store ObjectStore, opts StagerOptions) *stager {
	return &stager{store: store, opts: opts}
}

// stageIn lists every object under bucket/prefix, fetches each, and writes it
// under ws.InputDir at its key stripped of the prefix.
func (s *stager) stageIn(ctx context.Context, bucket, prefix string, ws *Workspace) error {
	keys, err := s.store.ListKeys(ctx, bucket, prefix)
	if err != nil {
		return err
	}
	sort.Strings(keys)

	for _, key := range keys {
		data, err := s.store.Get(ctx, bucket, key)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(key, prefix)
		rel = strings.TrimPrefix(rel, "/")

		if s.opts.Gzip {
			if !strings.HasSuffix(rel, ".gz") {
				return &ProtocolError{Message: "object " + key + " is not gzip-suffixed but gzip staging is enabled"}
			}
			rel = strings.TrimSuffix(rel, ".gz")
			data, err = gunzip(data)
			if err != nil {
				return err
			}
		}

		target := filepath.Join(ws.InputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := ioutil.WriteFile(target, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// stageOut walks ws.OutputDir and uploads every file found under
// bucket/prefix, returning the Artifacts it produced in walk order.
func (s *stager) stageOut(ctx context.Context, bucket, prefix string, ws *Workspace) ([]Artifact, error) {
	var artifacts []Artifact
	err := filepath.Walk(ws.OutputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(ws.OutputDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}

		key := prefix + "/" + rel
		if s.opts.Gzip {
			data, err = gzipBytes(data)
			if err != nil {
				return err
			}
			key += ".gz"
		}

		sum := sha256.Sum256(data)
		if err := s.store.Put(ctx, bucket, key, data); err != nil {
			return err
		}
		artifacts = append(artifacts, Artifact{
			Key:    key,
			Hash:   hex.EncodeToString(sum[:]),
			Length: int64(len(data)),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}
