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

import "testing"

func TestNewBuildCmdRegistersFlags(t *testing.T) {
	cmd := newBuildCmd()

	for _, name := range []string{"dict", "parse", "out", "sa", "lcp", "self-test", "window", "jobs", "block-size", "buf-size", "min-bwt-range", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
}

func TestNewBuildCmdRequiresDictParseOut(t *testing.T) {
	cmd := newBuildCmd()

	for _, name := range []string{"dict", "parse", "out"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("flag %q not registered", name)
			continue
		}

		if f.Annotations["cobra_annotation_bash_completion_one_required_flag"] == nil {
			t.Errorf("flag %q not marked required", name)
		}
	}
}

func TestNewBuildCmdDefaults(t *testing.T) {
	cmd := newBuildCmd()

	if err := cmd.Flags().Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts := cmd.RunE

	if opts == nil {
		t.Fatal("RunE not wired")
	}

	window, err := cmd.Flags().GetInt("window")
	if err != nil {
		t.Fatalf("GetInt(window): %v", err)
	}

	if window != 10 {
		t.Errorf("window default = %d, want 10", window)
	}

	selfTest, err := cmd.Flags().GetBool("self-test")
	if err != nil {
		t.Fatalf("GetBool(self-test): %v", err)
	}

	if selfTest {
		t.Error("self-test default = true, want false")
	}
}

func TestNewBuildCmdParsesFlagsIntoOptions(t *testing.T) {
	cmd := newBuildCmd()

	args := []string{
		"--dict", "d.dict",
		"--parse", "p",
		"--out", "o.bwt",
		"--sa", "custom.sa",
		"--lcp", "custom.lcp",
		"--self-test",
		"--window", "7",
		"--jobs", "4",
		"--verbose",
	}

	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// newBuildCmd closes over a fresh *buildOptions; recover it by re-reading
	// the bound flag values rather than the RunE closure, which keeps this
	// test to flag parsing only and out of runBuild's pipeline.
	dict, _ := cmd.Flags().GetString("dict")
	parse, _ := cmd.Flags().GetString("parse")
	out, _ := cmd.Flags().GetString("out")
	sa, _ := cmd.Flags().GetString("sa")
	lcp, _ := cmd.Flags().GetString("lcp")
	selfTest, _ := cmd.Flags().GetBool("self-test")
	window, _ := cmd.Flags().GetInt("window")
	jobs, _ := cmd.Flags().GetInt("jobs")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cases := map[string]struct {
		got, want interface{}
	}{
		"dict":      {dict, "d.dict"},
		"parse":     {parse, "p"},
		"out":       {out, "o.bwt"},
		"sa":        {sa, "custom.sa"},
		"lcp":       {lcp, "custom.lcp"},
		"self-test": {selfTest, true},
		"window":    {window, 7},
		"jobs":      {jobs, 4},
		"verbose":   {verbose, true},
	}

	for name, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", name, c.got, c.want)
		}
	}
}

func TestNewBuildCmdNoPositionalArgs(t *testing.T) {
	cmd := newBuildCmd()

	if cmd.Args == nil {
		t.Fatal("Args validator not set")
	}

	if err := cmd.Args(cmd, []string{"unexpected"}); err == nil {
		t.Error("expected an error for a positional argument")
	}

	if err := cmd.Args(cmd, nil); err != nil {
		t.Errorf("Args(nil) = %v, want nil", err)
	}
}
