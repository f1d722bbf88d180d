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

import "fmt"

// Error taxonomy for the PFP BWT core. Mirrors the (msg, code) shape of
// kanzi-go's IOError: nothing here is recovered locally, every failure is
// meant to surface to a caller that either aborts a CLI run or fails a test.
const (
	ErrTooManyWords = iota + 1
	ErrCorruptDictionary
	ErrPrimitiveFailure
	ErrShortWrite
	ErrInvariantBreach
	ErrFullWordMismatch
)

// PFPError is an extended error containing a message and a taxonomy code.
type PFPError struct {
	msg  string
	code int
}

// Error returns the underlying error string.
func (this PFPError) Error() string {
	return fmt.Sprintf("%v (code %v)", this.msg, this.code)
}

// Message returns the message associated with the error.
func (this PFPError) Message() string {
	return this.msg
}

// ErrorCode returns the taxonomy code associated with the error.
func (this PFPError) ErrorCode() int {
	return this.code
}

func newError(code int, format string, args ...any) *PFPError {
	return &PFPError{msg: fmt.Sprintf(format, args...), code: code}
}

func invariantErr(format string, args ...any) *PFPError {
	return newError(ErrInvariantBreach, format, args...)
}
