// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

// IntervalDay is a (days, millis) pair packed little-endian as two int32s
// into the 8-byte element width an IntervalDay vector uses. The struct has
// no padding between its two int32 fields, so IntervalDayVector's generic
// Get/Set reinterpret it directly against the 8-byte element, the same as
// every other roster member; there is no separate encode/decode step.
type IntervalDay struct {
	Days   int32
	Millis int32
}
