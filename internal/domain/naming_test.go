package domain

import "testing"

func TestDefaultOutputName(t *testing.T) {
	tests := []struct {
		name  string
		items []SourceItem
		want  string
	}{
		{
			name:  "empty session",
			items: nil,
			want:  "merged.pdf",
		},
		{
			name:  "lowercase suffix",
			items: []SourceItem{{DisplayName: "Report.pdf"}},
			want:  "Report_merged.pdf",
		},
		{
			name:  "uppercase suffix stripped case-insensitively",
			items: []SourceItem{{DisplayName: "report.PDF"}},
			want:  "report_merged.pdf",
		},
		{
			name:  "mixed case suffix",
			items: []SourceItem{{DisplayName: "scan.Pdf"}},
			want:  "scan_merged.pdf",
		},
		{
			name:  "no suffix",
			items: []SourceItem{{DisplayName: "notes"}},
			want:  "notes_merged.pdf",
		},
		{
			name:  "suffix only",
			items: []SourceItem{{DisplayName: ".pdf"}},
			want:  "merged.pdf",
		},
		{
			name: "only the first item counts",
			items: []SourceItem{
				{DisplayName: "first.pdf"},
				{DisplayName: "second.pdf"},
			},
			want: "first_merged.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultOutputName(tt.items); got != tt.want {
				t.Errorf("DefaultOutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	items := []SourceItem{
		{ID: "a", PageCount: 5},
		{ID: "b", PageCount: 10},
		{ID: "c", PageCount: 0},
	}
	if got := TotalPages(items); got != 15 {
		t.Errorf("TotalPages() = %d, want 15", got)
	}
	if got := TotalPages(nil); got != 0 {
		t.Errorf("TotalPages(nil) = %d, want 0", got)
	}
}

func TestNewMergeRequest_Snapshot(t *testing.T) {
	items := []SourceItem{
		{ID: "a", DisplayName: "a.pdf", PageCount: 2},
		{ID: "b", DisplayName: "b.pdf", PageCount: 3},
	}
	req := NewMergeRequest(items, "out.pdf")

	if req.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", req.TotalPages)
	}
	if req.OutputName != "out.pdf" {
		t.Errorf("OutputName = %q, want %q", req.OutputName, "out.pdf")
	}

	// Mutating the source slice must not leak into the snapshot.
	items[0] = SourceItem{ID: "x", PageCount: 99}
	if req.Items[0].ID != "a" {
		t.Error("request items aliased the source slice")
	}
}
