// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package xbrl

import "errors"

var (
	// ErrNotXBRL indicates content with no recognizable markup structure at all.
	ErrNotXBRL = errors.New("not an XBRL document")

	// ErrMalformed indicates markup that parsed but lacks the XBRL root
	// element the extractor expects.
	ErrMalformed = errors.New("malformed XBRL document")
)
