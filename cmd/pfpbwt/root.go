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

// Command pfpbwt drives the prefix-free-parsing BWT core against
// dictionary/parse files produced by an external PFP front end.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const _APP_HEADER = "pfpbwt - parallel BWT construction from a PFP dictionary"

var rootCfgPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pfpbwt",
		Short: _APP_HEADER,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&rootCfgPath, "config", "", "path to a YAML config file")
	root.AddCommand(newBuildCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
