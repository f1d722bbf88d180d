//go:build pfpdebug

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

// debugAssert panics when cond is false. Built only with -tags pfpdebug; the
// release build keeps the seqid<dwords and suflen<=wlen[seqid] checks (they
// are returned as errors directly, never elided) but drops everything else
// from the hot path, matching the original's debug-only assert() calls.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
