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
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// flagBit marks, in a DA entry, that the suffix equals the LCP with its
// predecessor (so it must be considered together with its neighbours during
// the same-suffix merge). seqidMask recovers the phrase id.
const (
	flagBit    = uint32(1) << 31
	seqidMask  = flagBit - 1
	maxDWords  = 1 << 31
)

// SuffixData wraps the suffix array / LCP array pair before pass 1, and the
// document array / suffix-length pair after pass 1. Go keeps them as
// independent slices rather than overlaying eos/wlen onto SA/LCP the way the
// source does (spec.md notes the overlay is a memory-saving trick, not part
// of the contract).
type SuffixData struct {
	SA  []uint32
	LCP []int32
}

// saRange is a contiguous chunk of SA/LCP indices handed to a pass-1 worker.
// start < 0 is the termination sentinel.
type saRange struct {
	start, end int64
}

func (r saRange) isSentinel() bool { return r.start < 0 }

// convertEntry rewrites SA[i]/LCP[i] in place into DA[i]/SufLen[i], checking
// the invariants from the data model. Returns whether suffix i is a full
// word.
func convertEntry(dict *Dictionary, sa []uint32, lcp []int32, i int64) (fullWord bool, err error) {
	pos := sa[i]
	suflen, seqid := getlen(pos, dict.Eos)

	if int(seqid) >= dict.DWords() {
		return false, invariantErr("seqid %d >= dwords %d at index %d", seqid, dict.DWords(), i)
	}

	if suflen < lcp[i] {
		return false, invariantErr("suffix length %d shorter than lcp %d at index %d", suflen, lcp[i], i)
	}

	if suflen > dict.Wlen[seqid] {
		return false, invariantErr("suffix length %d longer than word length %d at index %d", suflen, dict.Wlen[seqid], i)
	}

	full := suflen == dict.Wlen[seqid]

	if full && lcp[i] >= suflen {
		return false, invariantErr("full word suffix at index %d is a prefix of another suffix", i)
	}

	if lcp[i] == suflen {
		sa[i] = seqid | flagBit
	} else {
		sa[i] = seqid
	}

	lcp[i] = suflen
	return full, nil
}

// ConvertSAtoDA rewrites SA[dwords+w+1:dsize] and LCP[dwords+w+1:dsize] in
// place into DA and SufLen, as described in sa2da. numt == 0 runs serially;
// numt > 0 spawns that many worker goroutines fed by a bounded queue.
func ConvertSAtoDA(ctx context.Context, dict *Dictionary, sd *SuffixData, w int, cfg Config, listeners []Listener) (fullWords int64, err error) {
	dwords := dict.DWords()

	if err := checkWordCount(dwords); err != nil {
		return 0, err
	}

	lo := int64(dwords) + int64(w) + 1
	hi := int64(len(sd.SA))

	if lo > hi {
		return 0, invariantErr("dwords+w+1 (%d) exceeds dictionary suffix array size (%d)", lo, hi)
	}

	cfg = cfg.withDefaults()
	notify(listeners, NewEventFromString(EvtConvertStart, "Converting SA and LCP Array to DA and SufLen"))
	start := time.Now()

	if cfg.NumThreads == 0 {
		fullWords, err = convertSerial(dict, sd, lo, hi)
	} else {
		fullWords, err = convertParallel(ctx, dict, sd, lo, hi, cfg)
	}

	if err != nil {
		return 0, err
	}

	notify(listeners, newCountersEvent(EvtConvertEnd, hi-lo, fullWords, 0, 0, time.Since(start)))
	return fullWords, nil
}

func convertSerial(dict *Dictionary, sd *SuffixData, lo, hi int64) (int64, error) {
	var full int64

	for i := lo; i < hi; i++ {
		isFull, err := convertEntry(dict, sd.SA, sd.LCP, i)
		if err != nil {
			return 0, err
		}

		if isFull {
			full++
		}
	}

	return full, nil
}

func convertParallel(ctx context.Context, dict *Dictionary, sd *SuffixData, lo, hi int64, cfg Config) (int64, error) {
	q := newRangeQueue[saRange](cfg.BufSize)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for i := lo; i < hi; i += int64(cfg.BlockSize) {
			end := i + int64(cfg.BlockSize)

			if end > hi {
				end = hi
			}

			if err := q.push(gctx, saRange{start: i, end: end}); err != nil {
				return err
			}
		}

		for t := 0; t < cfg.NumThreads; t++ {
			if err := q.push(gctx, saRange{start: -1}); err != nil {
				return err
			}
		}

		return nil
	})

	var mu sync.Mutex
	var total int64

	for t := 0; t < cfg.NumThreads; t++ {
		g.Go(func() error {
			var local int64

			for {
				r, err := q.pop(gctx)
				if err != nil {
					return err
				}

				if r.isSentinel() {
					break
				}

				for i := r.start; i < r.end; i++ {
					full, err := convertEntry(dict, sd.SA, sd.LCP, i)
					if err != nil {
						return err
					}

					if full {
						local++
					}
				}
			}

			mu.Lock()
			total += local
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return total, nil
}
