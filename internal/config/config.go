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

// Package config loads the pfpbwt CLI's on-disk configuration and merges it
// with command-line overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivelegant/pfpbwt/pfp"
)

// File is the on-disk shape of a pfpbwt config file.
type File struct {
	Jobs        int  `yaml:"jobs"`
	BlockSize   int  `yaml:"blockSize"`
	BufSize     int  `yaml:"bufSize"`
	MinBWTRange int  `yaml:"minBwtRange"`
	Verbose     bool `yaml:"verbose"`
}

// Load reads a YAML config file from path. A missing path is not an error;
// Load returns the zero File so the CLI's flag defaults apply unchanged.
func Load(path string) (File, error) {
	var f File

	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return f, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return f, nil
}

// Merge combines a config file with explicit flag overrides; a flag value
// that differs from its documented zero default wins. flags is expected to
// have already absorbed cobra's own flag defaults, so Merge only needs to
// prefer non-zero fields.
func Merge(file File, flags File) pfp.Config {
	cfg := pfp.DefaultConfig()

	if file.Jobs > 0 {
		cfg.NumThreads = file.Jobs
	}

	if file.BlockSize > 0 {
		cfg.BlockSize = file.BlockSize
	}

	if file.BufSize > 0 {
		cfg.BufSize = file.BufSize
	}

	if file.MinBWTRange > 0 {
		cfg.MinBWTRange = file.MinBWTRange
	}

	if flags.Jobs > 0 {
		cfg.NumThreads = flags.Jobs
	}

	if flags.BlockSize > 0 {
		cfg.BlockSize = flags.BlockSize
	}

	if flags.BufSize > 0 {
		cfg.BufSize = flags.BufSize
	}

	if flags.MinBWTRange > 0 {
		cfg.MinBWTRange = flags.MinBWTRange
	}

	return cfg
}
