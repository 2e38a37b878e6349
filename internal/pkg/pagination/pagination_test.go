package pagination

import "testing"

func TestNewParams(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 1, 20, 1, 20, 0},
		{"second page", 2, 20, 2, 20, 20},
		{"zero page clamps to first", 0, 10, 1, 10, 0},
		{"negative page clamps to first", -3, 10, 1, 10, 0},
		{"zero limit falls back to default", 1, 0, 1, DefaultLimit, 0},
		{"limit capped at max", 1, 500, 1, MaxLimit, 0},
		{"deep page offset", 5, 25, 5, 25, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(tt.page, tt.limit)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("NewParams(%d, %d) = {Page:%d Limit:%d Offset:%d}, want {Page:%d Limit:%d Offset:%d}",
					tt.page, tt.limit, p.Page, p.Limit, p.Offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"single short page", 1, 20, 5, 1, false, false},
		{"exact multiple", 1, 20, 40, 2, true, false},
		{"partial last page", 2, 20, 41, 3, true, true},
		{"last page", 3, 20, 41, 3, false, true},
		{"empty result", 1, 20, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := GetMeta(NewParams(tt.page, tt.limit), tt.total)
			if m.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", m.TotalPages, tt.wantTotalPages)
			}
			if m.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %t, want %t", m.HasNext, tt.wantHasNext)
			}
			if m.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %t, want %t", m.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
