package core

import (
	"errors"
	"testing"
)

func TestDocTypeValidate(t *testing.T) {
	for _, dt := range DocTypes() {
		if err := dt.Validate(); err != nil {
			t.Errorf("Validate() on %q: %v", dt, err)
		}
	}

	if err := DocType("13-F").Validate(); !errors.Is(err, ErrInvalidDocType) {
		t.Errorf("Validate() on unknown type = %v, want ErrInvalidDocType", err)
	}
}

func TestFilingRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  FilingRecord
		wantErr error
	}{
		{
			name:   "valid record",
			record: FilingRecord{Ticker: "AAPL", DocType: DocType10K, DirPath: "/data/sec-edgar-filings/AAPL/10-K/"},
		},
		{
			name:    "missing ticker",
			record:  FilingRecord{DocType: DocType10K, DirPath: "/p"},
			wantErr: ErrEmptyTicker,
		},
		{
			name:    "bad doc type",
			record:  FilingRecord{Ticker: "AAPL", DocType: "S-1", DirPath: "/p"},
			wantErr: ErrInvalidDocType,
		},
		{
			name:    "missing path",
			record:  FilingRecord{Ticker: "AAPL", DocType: DocType10K},
			wantErr: ErrEmptyDirPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidFilingRecord) {
				t.Errorf("Validate() = %v, should wrap ErrInvalidFilingRecord", err)
			}
		})
	}
}
