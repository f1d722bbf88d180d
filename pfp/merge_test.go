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

import (
	"bytes"
	"testing"
)

// S3: both phrases agree on the character preceding their shared suffix, so
// the merge takes the easy concatenate-in-any-order path.
func TestWriteSameSuffixEasy(t *testing.T) {
	inv := &InvertedList{
		IStart: []uint32{0, 2, 5},
		IList:  []uint32{100, 101, 200, 201, 202},
	}

	buf := make([]byte, 5)
	var c, easy, hard int64

	writeSameSuffix([]uint32{0, 1}, []byte{'a', 'a'}, inv, buf, &c, &easy, &hard)

	if c != 5 {
		t.Fatalf("c = %d, want 5", c)
	}

	if easy != 5 || hard != 0 {
		t.Fatalf("easy=%d hard=%d, want easy=5 hard=0", easy, hard)
	}

	want := bytes.Repeat([]byte{'a'}, 5)

	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

// S4: the phrases disagree on the preceding character, so the merge must
// walk their occurrence lists in increasing parse-position order.
func TestWriteSameSuffixHard(t *testing.T) {
	inv := &InvertedList{
		IStart: []uint32{0, 2, 5},
		IList:  []uint32{10, 30, 5, 20, 40},
	}

	buf := make([]byte, 5)
	var c, easy, hard int64

	writeSameSuffix([]uint32{0, 1}, []byte{'a', 'b'}, inv, buf, &c, &easy, &hard)

	if c != 5 {
		t.Fatalf("c = %d, want 5", c)
	}

	if easy != 0 || hard != 5 {
		t.Fatalf("easy=%d hard=%d, want easy=0 hard=5", easy, hard)
	}

	want := []byte{'b', 'a', 'b', 'a', 'b'}

	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestWriteSameSuffixSkipsExhaustedPhrase(t *testing.T) {
	inv := &InvertedList{
		IStart: []uint32{0, 0, 2},
		IList:  []uint32{5, 6},
	}

	buf := make([]byte, 2)
	var c, easy, hard int64

	writeSameSuffix([]uint32{0, 1}, []byte{'x', 'y'}, inv, buf, &c, &easy, &hard)

	if c != 2 || hard != 2 || easy != 0 {
		t.Fatalf("c=%d easy=%d hard=%d, want c=2 easy=0 hard=2", c, easy, hard)
	}

	if !bytes.Equal(buf, []byte{'y', 'y'}) {
		t.Fatalf("buf = %v, want [y y]", buf)
	}
}
