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


// Package xbrl parses XBRL-style SEC filings and extracts their narrative
// text.
//
// The package does not model XBRL semantics. It treats a filing as an HTML
// tree and pulls out the disclosure prose using a structural heuristic:
// narrative text lives in paragraph and division blocks that contain styled
// spans, while purely tabular and numeric markup does not.
package xbrl
