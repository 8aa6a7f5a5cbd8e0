package listkit_test

import (
	"reflect"
	"testing"
	"time"

	"yachaywasi_backend/internals/listkit"
)

type record struct {
	Status string
	Type   string
	Date   time.Time
}

func TestCountByConcrete(t *testing.T) {
	all := []record{
		{Status: "PENDING", Type: "STAFF"},
		{Status: "APPROVED", Type: "ADVISER"},
		{Status: "APPROVED", Type: "STAFF"},
	}

	byStatus := listkit.CountBy(all, func(r record) string { return r.Status })
	if !reflect.DeepEqual(byStatus, map[string]int{"PENDING": 1, "APPROVED": 2}) {
		t.Fatalf("countsByStatus: got %v", byStatus)
	}

	byType := listkit.CountBy(all, func(r record) string { return r.Type })
	if !reflect.DeepEqual(byType, map[string]int{"STAFF": 2, "ADVISER": 1}) {
		t.Fatalf("countsByType: got %v", byType)
	}
}

func TestCountByExcludesEmptyKeys(t *testing.T) {
	all := []record{
		{Status: "PENDING"},
		{Status: ""},
		{Status: "APPROVED"},
		{Status: ""},
	}
	byStatus := listkit.CountBy(all, func(r record) string { return r.Status })

	sum := 0
	for _, n := range byStatus {
		sum += n
	}
	if sum != 2 {
		t.Fatalf("sum of counts must equal records with non-empty status, got %d", sum)
	}
	if _, ok := byStatus[""]; ok {
		t.Fatal("empty key must not appear in projection")
	}
}

func TestCountByMonth(t *testing.T) {
	date := func(y int, m time.Month) time.Time {
		return time.Date(y, m, 15, 0, 0, 0, 0, time.UTC)
	}
	all := []record{
		{Date: date(2025, time.January)},
		{Date: date(2025, time.January)},
		{Date: date(2025, time.March)},
		{Date: date(2024, time.March)}, // other year, excluded
		{},                             // zero date, excluded
	}

	got := listkit.CountByMonth(all, 2025, func(r record) time.Time { return r.Date })
	var want [12]int
	want[0] = 2
	want[2] = 1
	if got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestCountByDoesNotMutateInput(t *testing.T) {
	all := []record{{Status: "PENDING"}, {Status: "APPROVED"}}
	orig := []record{{Status: "PENDING"}, {Status: "APPROVED"}}
	_ = listkit.CountBy(all, func(r record) string { return r.Status })
	if !reflect.DeepEqual(all, orig) {
		t.Fatal("input slice was mutated")
	}
}
