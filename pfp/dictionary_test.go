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

import "testing"

func TestNewDictionaryValid(t *testing.T) {
	d := []byte{DollarDefault, 'a', 'b', EndOfWordDefault, 'c', 'd', 'e', EndOfWordDefault}
	dict, err := NewDictionary(d, []uint32{3, 7}, EndOfWordDefault)

	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}

	if dict.DWords() != 2 {
		t.Fatalf("DWords() = %d, want 2", dict.DWords())
	}

	if dict.Wlen[0] != 3 || dict.Wlen[1] != 3 {
		t.Fatalf("Wlen = %v, want [3 3]", dict.Wlen)
	}
}

func TestNewDictionaryRejectsEmpty(t *testing.T) {
	if _, err := NewDictionary([]byte{1, 2, 3}, nil, EndOfWordDefault); err == nil {
		t.Fatal("expected an error for a dictionary with no words")
	}
}

func TestNewDictionaryRejectsNonIncreasingEos(t *testing.T) {
	d := []byte{DollarDefault, 'a', EndOfWordDefault, 'b', EndOfWordDefault}
	if _, err := NewDictionary(d, []uint32{2, 2}, EndOfWordDefault); err == nil {
		t.Fatal("expected an error for a non-increasing eos table")
	}
}

func TestNewDictionaryRejectsEmptyWord(t *testing.T) {
	d := []byte{DollarDefault, EndOfWordDefault, EndOfWordDefault}
	if _, err := NewDictionary(d, []uint32{0, 1}, EndOfWordDefault); err == nil {
		t.Fatal("expected an error for a zero-length word")
	}
}

func TestNewDictionaryRejectsMissingSentinel(t *testing.T) {
	d := []byte{DollarDefault, 'a', 'b', 'c'}
	if _, err := NewDictionary(d, []uint32{3}, EndOfWordDefault); err == nil {
		t.Fatal("expected an error when the eos position does not hold the sentinel")
	}
}

// S5: too many words in the dictionary is rejected at the 2^31 boundary.
// checkWordCount is exercised directly rather than through a literal
// 2^31-entry eos table, which no test machine can afford to allocate.
func TestCheckWordCountOverflowGuard(t *testing.T) {
	if err := checkWordCount(1 << 31); err == nil {
		t.Fatal("expected an error at the 2^31 word count boundary")
	}

	if err := checkWordCount((1 << 31) - 1); err != nil {
		t.Fatalf("unexpected error just below the boundary: %v", err)
	}
}

func TestGetlen(t *testing.T) {
	eos := []uint32{3, 7, 11}

	cases := []struct {
		pos        uint32
		wantSuflen int32
		wantSeqid  uint32
	}{
		{0, 3, 0},
		{2, 1, 0},
		{4, 3, 1},
		{8, 3, 2},
		{11, 0, 2},
	}

	for _, c := range cases {
		suflen, seqid := getlen(c.pos, eos)

		if suflen != c.wantSuflen || seqid != c.wantSeqid {
			t.Errorf("getlen(%d) = (%d, %d), want (%d, %d)", c.pos, suflen, seqid, c.wantSuflen, c.wantSeqid)
		}
	}
}
