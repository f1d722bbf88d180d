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

// daRange is a batch of DA/SufLen indices a pass-2 worker must turn into
// BWT bytes, plus the absolute output offset to write them at. start < 0 is
// the termination sentinel.
type daRange struct {
	start, end, bwtStart, count int64
}

func (r daRange) isSentinel() bool { return r.start < 0 }

// run describes what a single DA index (and, for a same-suffix group, its
// flagged neighbours) contributes to the BWT. It is computed once by a
// shared visitor and consumed both by the producer's byte-counting pre-scan
// and by the workers' actual byte emission, so the two can never drift.
type run struct {
	next        int64
	skip        bool
	full        bool
	seqid       uint32
	mergeSeqids []uint32
	mergeChars  []byte
	count       int64
}

// scanRun applies the per-entry rule from the specification at index i: skip
// suffixes no longer than w, emit a full word's occurrence count directly,
// or collect the run of flagged same-suffix neighbours (bounded by end) for
// the same-suffix merger.
func scanRun(dict *Dictionary, inv *InvertedList, da []uint32, suflen []int32, i, end int64, w int) (run, error) {
	debugAssert(i < end, "scanRun called with an empty range")
	next := i + 1

	if suflen[i] <= int32(w) {
		return run{next: next, skip: true}, nil
	}

	seqid := da[i] & seqidMask

	if int(seqid) >= dict.DWords() {
		return run{}, invariantErr("seqid %d >= dwords %d at DA index %d", seqid, dict.DWords(), i)
	}

	count := int64(inv.IStart[seqid+1] - inv.IStart[seqid])

	if suflen[i] == dict.Wlen[seqid] {
		return run{next: next, full: true, seqid: seqid, count: count}, nil
	}

	seqids := []uint32{seqid}
	chars := []byte{dict.D[dict.Eos[seqid]-uint32(suflen[i])-1]}

	for next < end && suflen[next] == suflen[i] {
		nseqid := da[next] & seqidMask

		if da[next]&flagBit == 0 {
			break
		}

		if suflen[next] == dict.Wlen[nseqid] {
			return run{}, invariantErr("flagged suffix at index %d is a full word", next)
		}

		seqids = append(seqids, nseqid)
		chars = append(chars, dict.D[dict.Eos[nseqid]-uint32(suflen[next])-1])
		count += int64(inv.IStart[nseqid+1] - inv.IStart[nseqid])
		next++
	}

	return run{next: next, seqid: seqid, mergeSeqids: seqids, mergeChars: chars, count: count}, nil
}

// planBatches performs the producer's read-only pre-scan: it applies the
// same per-entry rule the workers use, without emitting bytes, solely to
// compute each batch's byte count and absolute output offset. A batch closes
// once its accumulated byte count reaches cfg.MinBWTRange; the final,
// possibly short, batch is always included.
func planBatches(dict *Dictionary, inv *InvertedList, da []uint32, suflen []int32, dasize int64, w int, cfg Config) ([]daRange, error) {
	var batches []daRange
	var entries, written, rangeStart int64

	i := int64(0)

	for i < dasize {
		if entries >= int64(cfg.MinBWTRange) {
			batches = append(batches, daRange{start: rangeStart, end: i, bwtStart: written, count: entries})
			written += entries
			rangeStart = i
			entries = 0
		}

		r, err := scanRun(dict, inv, da, suflen, i, dasize, w)

		if err != nil {
			return nil, err
		}

		if !r.skip {
			entries += r.count
		}

		i = r.next
	}

	batches = append(batches, daRange{start: rangeStart, end: dasize, bwtStart: written, count: entries})
	return batches, nil
}

// processBatch turns one daRange into BWT bytes and writes them to writer at
// the batch's absolute offset. It walks [r.start, r.end) with the same
// per-entry rule the producer's pre-scan used, so the byte count it produces
// is guaranteed to match r.count.
func processBatch(dict *Dictionary, inv *InvertedList, last []byte, da []uint32, suflen []int32, w int, r daRange, writer *fileWriter) (fullWords, easy, hard int64, err error) {
	buf := make([]byte, r.count)
	var c int64

	for i := r.start; i < r.end; {
		rn, serr := scanRun(dict, inv, da, suflen, i, r.end, w)

		if serr != nil {
			return 0, 0, 0, serr
		}

		if rn.skip {
			i = rn.next
			continue
		}

		if rn.full {
			fullWords++

			for j := inv.IStart[rn.seqid]; j < inv.IStart[rn.seqid+1]; j++ {
				buf[c] = last[inv.IList[j]]
				c++
			}
		} else {
			writeSameSuffix(rn.mergeSeqids, rn.mergeChars, inv, buf, &c, &easy, &hard)
		}

		i = rn.next
	}

	if c != r.count {
		return 0, 0, 0, invariantErr("batch [%d,%d) produced %d bytes, expected %d", r.start, r.end, c, r.count)
	}

	if err := writer.WriteAt(buf, r.bwtStart); err != nil {
		return 0, 0, 0, err
	}

	return fullWords, easy, hard, nil
}

// ConstructBWT partitions the post-pass-1 DA/SufLen arrays into ranges,
// dispatches them to numt >= 1 workers through a bounded queue, and gathers
// their output via positional writes to outPath. D[0] must already be 0 (the
// caller forces it before calling this function, replacing the dictionary's
// Dollar sentinel with the final BWT's EOF marker).
func ConstructBWT(ctx context.Context, dict *Dictionary, sd *SuffixData, inv *InvertedList, last []byte, w int, outPath string, cfg Config, listeners []Listener) error {
	if cfg.NumThreads < 1 {
		return invariantErr("ConstructBWT requires at least one worker, got %d", cfg.NumThreads)
	}

	cfg = cfg.withDefaults()

	// The [0, dwords+w+1) prefix of SA/LCP was left untouched by pass 1 (see
	// ConvertSAtoDA); DA/SufLen only cover the suffix past it.
	lo := int64(dict.DWords()) + int64(w) + 1

	if lo > int64(len(sd.SA)) {
		return invariantErr("dwords+w+1 (%d) exceeds dictionary suffix array size (%d)", lo, len(sd.SA))
	}

	da := sd.SA[lo:]
	suflen := sd.LCP[lo:]
	dasize := int64(len(da))

	notify(listeners, NewEventFromString(EvtMergeStart, "Generating the final BWT"))
	start := time.Now()

	batches, err := planBatches(dict, inv, da, suflen, dasize, w, cfg)

	if err != nil {
		return err
	}

	writer, err := newFileWriter(outPath)

	if err != nil {
		return err
	}

	defer writer.Close()

	q := newRangeQueue[daRange](cfg.BufSize)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, b := range batches {
			if err := q.push(gctx, b); err != nil {
				return err
			}
		}

		for t := 0; t < cfg.NumThreads; t++ {
			if err := q.push(gctx, daRange{start: -1}); err != nil {
				return err
			}
		}

		return nil
	})

	var mu sync.Mutex
	var totalFull, totalEasy, totalHard int64

	for t := 0; t < cfg.NumThreads; t++ {
		g.Go(func() error {
			var full, easy, hard int64

			for {
				r, err := q.pop(gctx)

				if err != nil {
					return err
				}

				if r.isSentinel() {
					break
				}

				bf, be, bh, err := processBatch(dict, inv, last, da, suflen, w, r, writer)

				if err != nil {
					return err
				}

				full += bf
				easy += be
				hard += bh
			}

			mu.Lock()
			totalFull += full
			totalEasy += easy
			totalHard += hard
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if totalFull != int64(dict.DWords()) {
		return newError(ErrFullWordMismatch, "full word count %d does not match dictionary size %d", totalFull, dict.DWords())
	}

	notify(listeners, newCountersEvent(EvtMergeEnd, dasize, totalFull, totalEasy, totalHard, time.Since(start)))
	return nil
}
