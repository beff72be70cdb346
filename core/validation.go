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

import "fmt"

// Validate checks that the DocType is one of the accepted filing types.
func (dt DocType) Validate() error {
	switch dt {
	case DocType10K, DocType10Q, DocType8K:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidDocType, string(dt))
}

// Validate checks a FilingRecord for completeness before persistence.
func (r *FilingRecord) Validate() error {
	if NormalizeTicker(r.Ticker) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFilingRecord, ErrEmptyTicker)
	}
	if err := r.DocType.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilingRecord, err)
	}
	if r.DirPath == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFilingRecord, ErrEmptyDirPath)
	}
	return nil
}
