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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocType indicates a document type outside 10-K, 10-Q and 8-K.
	ErrInvalidDocType = errors.New("invalid document type")

	// ErrEmptyTicker indicates a ticker symbol that is empty after normalization.
	ErrEmptyTicker = errors.New("ticker cannot be empty")

	// ErrEmptyDirPath indicates a filing record without a directory path.
	ErrEmptyDirPath = errors.New("directory path cannot be empty")

	// ErrInvalidFilingRecord indicates a FilingRecord failed validation.
	ErrInvalidFilingRecord = errors.New("invalid filing record")
)
