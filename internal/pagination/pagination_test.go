package pagination

import "testing"

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		req       PageRequest
		wantData  []int
		wantPages int
		wantPage  int
		wantSize  int
	}{
		{"defaults", PageRequest{}, []int{1, 2, 3, 4, 5}, 1, 1, 20},
		{"first page", PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3, 1, 2},
		{"last partial page", PageRequest{Page: 3, PageSize: 2}, []int{5}, 3, 3, 2},
		{"past the end", PageRequest{Page: 9, PageSize: 2}, []int{}, 3, 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.req)
			if len(got.Data) != len(tt.wantData) {
				t.Fatalf("expected %v, got %v", tt.wantData, got.Data)
			}
			for i := range tt.wantData {
				if got.Data[i] != tt.wantData[i] {
					t.Errorf("item %d: expected %d, got %d", i, tt.wantData[i], got.Data[i])
				}
			}
			if got.TotalItems != 5 {
				t.Errorf("expected 5 total items, got %d", got.TotalItems)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("expected %d pages, got %d", tt.wantPages, got.TotalPages)
			}
			if got.Page != tt.wantPage || got.PageSize != tt.wantSize {
				t.Errorf("expected page %d size %d, got %d/%d", tt.wantPage, tt.wantSize, got.Page, got.PageSize)
			}
		})
	}
}

func TestSlice_EmptyIsNotNil(t *testing.T) {
	got := Slice([]string(nil), PageRequest{})
	if got.Data == nil {
		t.Error("expected empty data slice, got nil")
	}
	if got.TotalPages != 0 {
		t.Errorf("expected 0 pages, got %d", got.TotalPages)
	}
}
