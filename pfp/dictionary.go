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

// Package pfp builds the Burrows-Wheeler Transform of a text from its
// prefix-free-parsing dictionary, suffix/LCP arrays, inverted list and
// last-character array, the final stage of the PFP construction scheme.
package pfp

import "sort"

// EndOfWordDefault is the sentinel byte value separating phrases in the
// dictionary when the caller does not supply one explicitly.
const EndOfWordDefault = byte(0x02)

// DollarDefault marks the conceptual start of the dictionary; the caller
// must force D[0] to 0 before the BWT merge pass so that position becomes
// the EOF marker of the final transform.
const DollarDefault = byte(0x01)

// Dictionary is the concatenation of dwords distinct phrases, each
// terminated by an EndOfWord sentinel. Phrase i occupies
// D[eos[i-1]+1 .. eos[i]] (eos[-1] == -1 conceptually).
type Dictionary struct {
	D         []byte
	Eos       []uint32
	Wlen      []int32
	EndOfWord byte
}

// NewDictionary builds a Dictionary from raw bytes and the positions of its
// EndOfWord sentinels, validating the invariants from the data model: eos is
// monotone increasing, every eos position actually holds the sentinel byte,
// and every derived word length is strictly positive.
func NewDictionary(d []byte, eos []uint32, endOfWord byte) (*Dictionary, error) {
	if len(eos) == 0 {
		return nil, newError(ErrCorruptDictionary, "dictionary has no words")
	}

	if err := checkWordCount(len(eos)); err != nil {
		return nil, err
	}

	wlen := make([]int32, len(eos))
	wlen[0] = int32(eos[0])

	if wlen[0] <= 0 {
		return nil, newError(ErrCorruptDictionary, "word %d has non-positive length %d", 0, wlen[0])
	}

	for i := 1; i < len(eos); i++ {
		if eos[i] <= eos[i-1] {
			return nil, newError(ErrCorruptDictionary, "eos is not strictly increasing at index %d", i)
		}

		wlen[i] = int32(eos[i]) - int32(eos[i-1]) - 1

		if wlen[i] <= 0 {
			return nil, newError(ErrCorruptDictionary, "word %d has non-positive length %d", i, wlen[i])
		}
	}

	for i, pos := range eos {
		if int(pos) >= len(d) || d[pos] != endOfWord {
			return nil, newError(ErrCorruptDictionary, "missing EndOfWord sentinel for word %d at position %d", i, pos)
		}
	}

	return &Dictionary{D: d, Eos: eos, Wlen: wlen, EndOfWord: endOfWord}, nil
}

// checkWordCount enforces the overflow guard shared by dictionary validation
// and the pass-1 entry point: a phrase id must fit in the 31 low bits of a DA
// entry alongside the flag bit.
func checkWordCount(dwords int) error {
	if dwords >= maxDWords {
		return newError(ErrTooManyWords, "too many words in the dictionary: %d, limit is 2^31-1", dwords)
	}

	return nil
}

// DWords returns the number of phrases in the dictionary.
func (this *Dictionary) DWords() int {
	return len(this.Eos)
}

// getlen returns the length of the suffix of D starting at pos up to (but
// excluding) the EndOfWord sentinel of its containing phrase, along with the
// id of that phrase. This is the getlen collaborator from the data model:
// external to the BWT merge logic, but small enough to ship a reference
// implementation rather than model it as an injected function value.
func getlen(pos uint32, eos []uint32) (suflen int32, seqid uint32) {
	idx := sort.Search(len(eos), func(i int) bool { return eos[i] >= pos })
	return int32(eos[idx]) - int32(pos), uint32(idx)
}
