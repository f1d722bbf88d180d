/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pfp

import "os"

// fileWriter is a positional (offset-addressed) writer with short-write
// retry, the Go analog of the original's pwrite loop. Workers hold disjoint
// byte ranges of the same descriptor and never coordinate: the offset is
// passed explicitly on every call, never implied by a shared file cursor.
type fileWriter struct {
	f *os.File
}

func newFileWriter(path string) (*fileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)

	if err != nil {
		return nil, newError(ErrPrimitiveFailure, "open %s: %v", path, err)
	}

	return &fileWriter{f: f}, nil
}

// WriteAt writes buf at offset, retrying on short writes until every byte is
// written. A write that reports more bytes than requested is impossible and
// treated as fatal, matching the original's "pwrite error (2)" check.
func (this *fileWriter) WriteAt(buf []byte, offset int64) error {
	for len(buf) > 0 {
		n, err := this.f.WriteAt(buf, offset)

		if err != nil {
			return newError(ErrShortWrite, "pwrite at offset %d: %v", offset, err)
		}

		if n > len(buf) {
			return newError(ErrShortWrite, "pwrite at offset %d wrote more than requested", offset)
		}

		buf = buf[n:]
		offset += int64(n)
	}

	return nil
}

func (this *fileWriter) Close() error {
	return this.f.Close()
}
