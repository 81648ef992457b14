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

package board

// updateRepetition walks back through history two plies at a time,
// as far as the halfmove clock allows a repeat to reach, looking for a
// StateInfo with the same PositionKey. See StateInfo.Repetition's doc
// comment for the encoding this assigns.
func (p *Position) updateRepetition() {
	st := p.State()
	st.Repetition = 0

	end := st.HalfmoveClock
	if end < 4 {
		return
	}

	stp, ok := p.Previous(st)
	if !ok {
		return
	}
	if stp, ok = p.Previous(stp); !ok {
		return
	}

	for i := 4; i <= end; i += 2 {
		if stp, ok = p.Previous(stp); !ok {
			return
		}
		if stp, ok = p.Previous(stp); !ok {
			return
		}
		if stp.PositionKey == st.PositionKey {
			if stp.Repetition != 0 {
				st.Repetition = i
			} else {
				st.Repetition = -i
			}
			return
		}
	}
}
