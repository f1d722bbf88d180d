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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivelegant/pfpbwt/internal/config"
	"github.com/ivelegant/pfpbwt/pfp"
)

type buildOptions struct {
	dictPath  string
	parseBase string
	outPath   string
	saPath    string
	lcpPath   string
	selfTest  bool

	window      int
	jobs        int
	blockSize   int
	bufSize     int
	minBWTRange int
	verbose     bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the BWT of a dictionary given its parse and its SA/LCP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dictPath, "dict", "", "path to the dictionary file (required)")
	flags.StringVar(&opts.parseBase, "parse", "", "base path for the .ilist/.istart/.last parse files (required)")
	flags.StringVar(&opts.outPath, "out", "", "path to write the final BWT to (required)")
	flags.StringVar(&opts.saPath, "sa", "", "path to the dictionary's suffix array, uint32 little-endian (default <dict>.sa)")
	flags.StringVar(&opts.lcpPath, "lcp", "", "path to the dictionary's LCP array, int32 little-endian (default <dict>.lcp)")
	flags.BoolVar(&opts.selfTest, "self-test", false, "compute SA/LCP in-process with the O(n log^2 n) reference sorter instead of reading --sa/--lcp from disk")
	flags.IntVar(&opts.window, "window", 10, "PFP trigger window size")
	flags.IntVar(&opts.jobs, "jobs", 0, "number of worker threads (0 uses the config/default)")
	flags.IntVar(&opts.blockSize, "block-size", 0, "pass-1 chunk size (0 uses the config/default)")
	flags.IntVar(&opts.bufSize, "buf-size", 0, "producer/consumer queue capacity (0 uses the config/default)")
	flags.IntVar(&opts.minBWTRange, "min-bwt-range", 0, "minimum bytes per pass-2 batch (0 uses the config/default)")
	flags.BoolVar(&opts.verbose, "verbose", false, "print progress lines")

	for _, name := range []string{"dict", "parse", "out"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	return cmd
}

func runBuild(opts *buildOptions) error {
	fileCfg, err := config.Load(rootCfgPath)

	if err != nil {
		return err
	}

	cfg := config.Merge(fileCfg, config.File{
		Jobs:        opts.jobs,
		BlockSize:   opts.blockSize,
		BufSize:     opts.bufSize,
		MinBWTRange: opts.minBWTRange,
	})

	verbose := opts.verbose || fileCfg.Verbose

	dict, err := readDict(opts.dictPath, pfp.EndOfWordDefault)

	if err != nil {
		return err
	}

	ilist, err := readUint32Slice(opts.parseBase + ".ilist")

	if err != nil {
		return err
	}

	istart, err := readUint32Slice(opts.parseBase + ".istart")

	if err != nil {
		return err
	}

	last, err := readBytes(opts.parseBase + ".last")

	if err != nil {
		return err
	}

	if dict.D[0] != pfp.DollarDefault {
		return fmt.Errorf("expected dictionary to start with the Dollar sentinel (0x%02x), got 0x%02x", pfp.DollarDefault, dict.D[0])
	}

	sd, err := loadSuffixData(dict, opts)

	if err != nil {
		return err
	}

	// The Dollar sentinel only guides SA/LCP construction; once that is done
	// it is rewritten to the EOF marker the final BWT uses at D[0].
	dict.D[0] = 0

	inv := &pfp.InvertedList{IList: ilist, IStart: istart}
	listeners := []pfp.Listener{&stderrPrinter{out: os.Stderr, verbose: verbose}}
	ctx := context.Background()

	if _, err := pfp.ConvertSAtoDA(ctx, dict, sd, opts.window, cfg, listeners); err != nil {
		return err
	}

	if err := pfp.ConstructBWT(ctx, dict, sd, inv, last, opts.window, opts.outPath, cfg, listeners); err != nil {
		return err
	}

	return nil
}

// loadSuffixData returns the dictionary's SA/LCP. With --self-test it builds
// them in-process via the O(n log^2 n) reference sorter; otherwise it reads
// them from disk, the role spec.md assigns to an external compute_dict_bwt_lcp
// collaborator.
func loadSuffixData(dict *pfp.Dictionary, opts *buildOptions) (*pfp.SuffixData, error) {
	if opts.selfTest {
		return pfp.NewNaiveSuffixComputer().ComputeDictBWTLCP(dict.D)
	}

	saPath := opts.saPath
	if saPath == "" {
		saPath = opts.dictPath + ".sa"
	}

	lcpPath := opts.lcpPath
	if lcpPath == "" {
		lcpPath = opts.dictPath + ".lcp"
	}

	sa, err := readUint32Slice(saPath)

	if err != nil {
		return nil, err
	}

	lcp, err := readInt32Slice(lcpPath)

	if err != nil {
		return nil, err
	}

	if len(sa) != len(lcp) {
		return nil, fmt.Errorf("%s has %d entries but %s has %d", saPath, len(sa), lcpPath, len(lcp))
	}

	if len(sa) != len(dict.D) {
		return nil, fmt.Errorf("%s has %d entries but the dictionary is %d bytes", saPath, len(sa), len(dict.D))
	}

	return &pfp.SuffixData{SA: sa, LCP: lcp}, nil
}
