// Copyright © 2026 The chesscore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

// File is a file on the chessboard, a (0) through h (7).
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH

	FileNone File = -1
	FileN         = 8
)

// FileFrom converts an ascii file letter ('a'..'h') to a File, or FileNone
// if out of range.
func FileFrom(c byte) File {
	if c < 'a' || c > 'h' {
		return FileNone
	}
	return File(c - 'a')
}

// String renders f as its single-letter name.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + f))
}
