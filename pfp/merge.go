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

import "container/heap"

// InvertedList holds the occurrences of each phrase in the parse. Phrase s's
// occurrences are IList[IStart[s]:IStart[s+1]].
type InvertedList struct {
	IList  []uint32
	IStart []uint32
}

// mergeCursor is one phrase's remaining occurrence positions and the
// character it contributes to the BWT at each of them.
type mergeCursor struct {
	remaining []uint32
	char      byte
}

// cursorHeap orders cursors by their next parse position, smallest first.
// Ties cannot occur: ilist positions are globally unique (spec.md §9).
type cursorHeap []*mergeCursor

func (h cursorHeap) Len() int            { return len(h) }
func (h cursorHeap) Less(i, j int) bool  { return h[i].remaining[0] < h[j].remaining[0] }
func (h cursorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cursorHeap) Push(x interface{}) { *h = append(*h, x.(*mergeCursor)) }

func (h *cursorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// writeSameSuffix emits the BWT contribution of every occurrence of the
// phrases in seqids, all of which share the dictionary suffix currently
// being processed, appending to buf starting at *c and bumping *c, *easy or
// *hard accordingly. chars[j] is the character preceding that suffix inside
// phrase seqids[j] (char2write in the original).
//
// If every phrase contributes the same character, occurrences can be
// concatenated in any order (the easy case). Otherwise a min-heap performs a
// k-way merge of the phrases' occurrence lists in increasing parse-position
// order (the hard case).
func writeSameSuffix(seqids []uint32, chars []byte, inv *InvertedList, buf []byte, c *int64, easy, hard *int64) {
	debugAssert(len(seqids) == len(chars), "mismatched seqids/chars length")
	same := true

	for i := 1; i < len(chars) && same; i++ {
		same = chars[i-1] == chars[i]
	}

	if same {
		for _, s := range seqids {
			n := int64(inv.IStart[s+1] - inv.IStart[s])

			for j := int64(0); j < n; j++ {
				buf[*c] = chars[0]
				*c++
			}

			*easy += n
		}

		return
	}

	h := make(cursorHeap, 0, len(seqids))

	for i, s := range seqids {
		start, end := inv.IStart[s], inv.IStart[s+1]

		if start == end {
			continue
		}

		h = append(h, &mergeCursor{remaining: inv.IList[start:end], char: chars[i]})
	}

	heap.Init(&h)

	for h.Len() > 0 {
		top := h[0]
		buf[*c] = top.char
		*c++
		*hard++
		top.remaining = top.remaining[1:]

		if len(top.remaining) == 0 {
			heap.Pop(&h)
		} else {
			heap.Fix(&h, 0)
		}
	}
}
