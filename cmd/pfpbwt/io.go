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

package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ivelegant/pfpbwt/pfp"
)

// readDict reads the raw dictionary bytes from path and derives the eos
// table by scanning for endOfWord sentinels, the on-disk convention an
// external PFP front end is expected to produce.
func readDict(path string, endOfWord byte) (*pfp.Dictionary, error) {
	d, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	var eos []uint32

	for i, b := range d {
		if b == endOfWord {
			eos = append(eos, uint32(i))
		}
	}

	return pfp.NewDictionary(d, eos, endOfWord)
}

func readUint32Slice(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%s: size %d is not a multiple of 4", path, len(data))
	}

	out := make([]uint32, len(data)/4)

	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	return out, nil
}

// readInt32Slice reads an external compute_dict_bwt_lcp collaborator's LCP
// array, stored as little-endian int32 words.
func readInt32Slice(path string) ([]int32, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%s: size %d is not a multiple of 4", path, len(data))
	}

	out := make([]int32, len(data)/4)

	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}

	return out, nil
}

func readBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}
