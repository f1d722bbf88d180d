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

import "sort"

// DictBWTComputer is the compute_dict_bwt_lcp collaborator: it builds the
// suffix array and LCP array of a dictionary. It is explicitly out of scope
// for this module (the specification assumes SA/LCP are supplied), but a
// narrow interface lets callers plug in a real suffix-sorting algorithm
// (e.g. the DivSufSort family kanzi-go's own BWT.Forward uses ahead of its
// merge step) while tests and the CLI's self-test mode use the reference
// implementation below.
type DictBWTComputer interface {
	ComputeDictBWTLCP(d []byte) (*SuffixData, error)
}

// naiveSuffixComputer builds SA by sorting every suffix with sort.Slice and
// LCP with Kasai's algorithm. It is O(n log^2 n) and allocates a full copy
// of the suffix index space; adequate for tests and small dictionaries, not
// a substitute for a linear-time suffix array construction algorithm.
type naiveSuffixComputer struct{}

// NewNaiveSuffixComputer returns a DictBWTComputer reference implementation
// suitable for tests and the CLI's --self-test path.
func NewNaiveSuffixComputer() DictBWTComputer {
	return naiveSuffixComputer{}
}

func (naiveSuffixComputer) ComputeDictBWTLCP(d []byte) (*SuffixData, error) {
	n := len(d)
	sa := make([]int, n)

	for i := range sa {
		sa[i] = i
	}

	sort.Slice(sa, func(i, j int) bool {
		a, b := sa[i], sa[j]

		for a < n && b < n {
			if d[a] != d[b] {
				return d[a] < d[b]
			}

			a++
			b++
		}

		return a == n && b != n
	})

	rank := make([]int, n)

	for i, s := range sa {
		rank[s] = i
	}

	lcp := make([]int32, n)
	h := 0

	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}

		j := sa[rank[i]-1]

		for i+h < n && j+h < n && d[i+h] == d[j+h] {
			h++
		}

		lcp[rank[i]] = int32(h)

		if h > 0 {
			h--
		}
	}

	sa32 := make([]uint32, n)

	for i, s := range sa {
		sa32[i] = uint32(s)
	}

	return &SuffixData{SA: sa32, LCP: lcp}, nil
}
