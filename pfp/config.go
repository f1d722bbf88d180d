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

// Config holds the tunables of the parallel construction. numt is the only
// knob the original specification exposes; BlockSize, BufSize and
// MinBWTRange default to the spec's fixed constants (Sa_block, Buf_size,
// Min_bwt_range) but are made overridable so tests can exercise the
// parallel paths against small, hand-built inputs.
type Config struct {
	// NumThreads is the worker count. 0 forces a serial pass 1; pass 2
	// requires NumThreads >= 1.
	NumThreads int

	// BlockSize is the chunk size a pass-1 producer hands to each worker
	// (Sa_block in the original).
	BlockSize int

	// BufSize is the capacity of the bounded producer/consumer queue
	// (Buf_size in the original).
	BufSize int

	// MinBWTRange is the minimum number of output bytes a pass-2 batch must
	// reach before the producer closes it (Min_bwt_range in the original).
	MinBWTRange int
}

// DefaultConfig returns the tunables fixed by the specification.
func DefaultConfig() Config {
	return Config{
		NumThreads:  1,
		BlockSize:   100000,
		BufSize:     40,
		MinBWTRange: 100000,
	}
}

func (this Config) withDefaults() Config {
	cfg := this

	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultConfig().BlockSize
	}

	if cfg.BufSize <= 0 {
		cfg.BufSize = DefaultConfig().BufSize
	}

	if cfg.MinBWTRange <= 0 {
		cfg.MinBWTRange = DefaultConfig().MinBWTRange
	}

	return cfg
}
