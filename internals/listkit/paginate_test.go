package listkit_test

import (
	"testing"

	"yachaywasi_backend/internals/listkit"
)

func TestPaginateFirstPage(t *testing.T) {
	p := listkit.Paginate(25, 1, 10)
	want := listkit.Page{Start: 0, End: 10, Page: 1, TotalPages: 3}
	if p != want {
		t.Fatalf("want %+v, got %+v", want, p)
	}
}

func TestPaginateClampsPastLastPage(t *testing.T) {
	p := listkit.Paginate(25, 4, 10)
	want := listkit.Page{Start: 20, End: 25, Page: 3, TotalPages: 3}
	if p != want {
		t.Fatalf("want %+v, got %+v", want, p)
	}
}

func TestPaginateClampsBelowFirstPage(t *testing.T) {
	p := listkit.Paginate(25, -3, 10)
	if p.Page != 1 || p.Start != 0 {
		t.Fatalf("negative page must clamp to 1, got %+v", p)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	p := listkit.Paginate(0, 5, 10)
	want := listkit.Page{Start: 0, End: 0, Page: 1, TotalPages: 1}
	if p != want {
		t.Fatalf("want %+v, got %+v", want, p)
	}
}

func TestPaginateBounds(t *testing.T) {
	for filteredLen := 0; filteredLen <= 53; filteredLen++ {
		for _, perPage := range []int{1, 3, 10, 100} {
			for _, page := range []int{-5, 0, 1, 2, 7, 9999} {
				p := listkit.Paginate(filteredLen, page, perPage)
				if p.Page < 1 || p.Page > p.TotalPages {
					t.Fatalf("len=%d page=%d per=%d: clamped page %d out of [1,%d]", filteredLen, page, perPage, p.Page, p.TotalPages)
				}
				if p.End-p.Start > perPage {
					t.Fatalf("len=%d page=%d per=%d: window larger than page size: %+v", filteredLen, page, perPage, p)
				}
				if p.Start < 0 || p.End > filteredLen || p.Start > p.End {
					t.Fatalf("len=%d page=%d per=%d: invalid window %+v", filteredLen, page, perPage, p)
				}
			}
		}
	}
}

// concatenating every page must cover [0, filteredLen) exactly once
func TestPaginateCoverage(t *testing.T) {
	for _, filteredLen := range []int{0, 1, 9, 10, 11, 25, 100} {
		for _, perPage := range []int{1, 7, 10} {
			total := listkit.Paginate(filteredLen, 1, perPage).TotalPages
			covered := 0
			prevEnd := 0
			for page := 1; page <= total; page++ {
				p := listkit.Paginate(filteredLen, page, perPage)
				if p.Start != prevEnd {
					t.Fatalf("len=%d per=%d page=%d: gap or overlap, start=%d prevEnd=%d", filteredLen, perPage, page, p.Start, prevEnd)
				}
				covered += p.End - p.Start
				prevEnd = p.End
			}
			if covered != filteredLen {
				t.Fatalf("len=%d per=%d: pages cover %d elements", filteredLen, perPage, covered)
			}
		}
	}
}

func TestSlice(t *testing.T) {
	filtered := []int{10, 20, 30, 40, 50}
	got := listkit.Slice(filtered, listkit.Paginate(len(filtered), 2, 2))
	if len(got) != 2 || got[0] != 30 || got[1] != 40 {
		t.Fatalf("page 2 of size 2: want [30 40], got %v", got)
	}
}
