package service

import (
	"strconv"
	"testing"
	"time"

	"yachaywasi_backend/internals/features/volunteers/model"
	"yachaywasi_backend/internals/listkit"
)

// These tests drive List straight off the collection cache; no DB is
// touched because the store is pre-seeded.

func seedCollection(t *testing.T, n int) {
	t.Helper()
	var volunteers []model.VolunteerModel
	for i := 1; i <= n; i++ {
		typ := model.TypeStaff
		if i%2 == 0 {
			typ = model.TypeAdviser
		}
		volunteers = append(volunteers, model.VolunteerModel{
			ID:                uint(i),
			Name:              "Postulante" + strconv.Itoa(i),
			LastName:          "Apellido",
			Email:             "p" + strconv.Itoa(i) + "@example.com",
			TypeVolunteer:     typ,
			StatusVolunteer:   model.StatusPending,
			IDPostulationArea: uint(i%3 + 1),
			DatePostulation:   time.Date(2025, time.Month(i%12+1), 1, 0, 0, 0, 0, time.UTC),
		})
	}
	collection.Reset(volunteers)
	t.Cleanup(func() { collection.Reset(nil) })
}

func TestListPagesWholeCollection(t *testing.T) {
	seedCollection(t, 25)

	res, err := List(nil, listkit.Query{}, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 25 || res.TotalPages != 3 || res.Page != 1 {
		t.Fatalf("got total=%d totalPages=%d page=%d, want 25/3/1", res.Total, res.TotalPages, res.Page)
	}
	if len(res.Data) != 10 {
		t.Fatalf("page 1 has %d rows, want 10", len(res.Data))
	}

	last, err := List(nil, listkit.Query{}, 3, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(last.Data) != 5 {
		t.Fatalf("last page has %d rows, want 5", len(last.Data))
	}
}

func TestListClampsOutOfRangePage(t *testing.T) {
	seedCollection(t, 25)

	res, err := List(nil, listkit.Query{}, 99, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Page != 3 || len(res.Data) != 5 {
		t.Fatalf("page=%d rows=%d, want clamped to 3 with 5 rows", res.Page, len(res.Data))
	}
}

func TestListPagesThroughHeldFilter(t *testing.T) {
	seedCollection(t, 25)

	// 13 STAFF records (odd ids); page 2 of the filtered set must be
	// reachable, not silently replaced by page 1
	q := listkit.Query{Fields: map[string]string{"typeVolunteer": model.TypeStaff}}
	res, err := List(nil, q, 2, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Page != 2 {
		t.Fatalf("requested page 2 of the filtered set, got page %d", res.Page)
	}
	if res.Total != 13 || res.TotalPages != 3 {
		t.Fatalf("got total=%d totalPages=%d, want 13/3", res.Total, res.TotalPages)
	}
	if len(res.Data) != 5 || res.Data[0].ID != 11 {
		t.Fatalf("page 2 starts at id=%d with %d rows, want id=11 with 5 rows", res.Data[0].ID, len(res.Data))
	}
	for _, v := range res.Data {
		if v.TypeVolunteer != model.TypeStaff {
			t.Fatalf("non-STAFF row leaked: %+v", v)
		}
	}
}

func TestListClampsStalePageOverFilter(t *testing.T) {
	seedCollection(t, 25)

	// a page number held over from a larger result set lands on the
	// filtered set's last page, never an empty window
	q := listkit.Query{Fields: map[string]string{"typeVolunteer": model.TypeStaff}}
	res, err := List(nil, q, 99, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Page != 3 || len(res.Data) != 3 {
		t.Fatalf("page=%d rows=%d, want clamped to 3 with 3 rows", res.Page, len(res.Data))
	}
	if res.Data[0].ID != 21 {
		t.Fatalf("last page starts at id=%d, want 21", res.Data[0].ID)
	}
}

func TestListTextSearch(t *testing.T) {
	seedCollection(t, 25)

	res, err := List(nil, listkit.Query{Text: "p7@example"}, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 1 || res.Data[0].ID != 7 {
		t.Fatalf("search hit = %+v (total %d), want only id 7", res.Data, res.Total)
	}
}

func TestListEmptyCollectionShape(t *testing.T) {
	collection.Reset([]model.VolunteerModel{{ID: 1, Name: "x", TypeVolunteer: model.TypeStaff, StatusVolunteer: model.StatusPending}})
	t.Cleanup(func() { collection.Reset(nil) })

	// a filter nothing matches: empty data, one page, total 0
	q := listkit.Query{Fields: map[string]string{"status": model.StatusApproved}}
	res, err := List(nil, q, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 0 || res.TotalPages != 1 || len(res.Data) != 0 {
		t.Fatalf("got total=%d totalPages=%d rows=%d, want 0/1/0", res.Total, res.TotalPages, len(res.Data))
	}
}
