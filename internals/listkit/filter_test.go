package listkit_test

import (
	"reflect"
	"testing"

	"yachaywasi_backend/internals/listkit"
)

type applicant struct {
	ID         uint
	Name       string
	LastName   string
	Email      string
	Phone      string
	NumIdent   string
	Type       string
	Status     string
	University string
}

func (a applicant) SearchValues() []string {
	return []string{a.Name, a.LastName, a.Email, a.Phone, a.NumIdent}
}

func (a applicant) FilterValue(field string) (string, bool) {
	switch field {
	case "typeVolunteer":
		return a.Type, true
	case "status":
		return a.Status, true
	case "university":
		if a.University == "" {
			return "", false
		}
		return a.University, true
	default:
		return "", false
	}
}

func sampleApplicants() []applicant {
	return []applicant{
		{ID: 1, Name: "Maria", LastName: "Quispe", Email: "maria@yachay.org.pe", Phone: "987654321", NumIdent: "70123456", Type: "STAFF", Status: "PENDING", University: "PUCP"},
		{ID: 2, Name: "Jose", LastName: "Mamani", Email: "jose@yachay.org.pe", Phone: "912345678", NumIdent: "70987654", Type: "ADVISER", Status: "APPROVED"},
		{ID: 3, Name: "Ana", LastName: "Huaman", Email: "ana@yachay.org.pe", Phone: "956781234", NumIdent: "79123456", Type: "STAFF", Status: "APPROVED", University: "UTP"},
	}
}

func ids(items []applicant) []uint {
	out := make([]uint, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	all := sampleApplicants()
	got := listkit.Filter(all, listkit.Query{Text: "", Fields: map[string]string{}})
	if !reflect.DeepEqual(got, all) {
		t.Fatalf("empty query should return all records, got %v", ids(got))
	}
}

func TestFilterWhitespaceTextMatchesAll(t *testing.T) {
	all := sampleApplicants()
	got := listkit.Filter(all, listkit.Query{Text: "   "})
	if len(got) != len(all) {
		t.Fatalf("whitespace-only term should match all, got %d of %d", len(got), len(all))
	}
}

func TestFilterTextMatchesAnySearchField(t *testing.T) {
	all := sampleApplicants()
	cases := []struct {
		name string
		text string
		want []uint
	}{
		{"name case-insensitive", "mArIa", []uint{1}},
		{"last name substring", "uaman", []uint{3}},
		{"email domain matches everyone", "yachay.org", []uint{1, 2, 3}},
		{"phone raw substring", "91234", []uint{2, 3}},
		{"identification number", "70987654", []uint{2}},
		{"no hit", "zzz", []uint{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := listkit.Filter(all, listkit.Query{Text: tc.text})
			if !reflect.DeepEqual(ids(got), tc.want) {
				t.Fatalf("text %q: want %v, got %v", tc.text, tc.want, ids(got))
			}
		})
	}
}

func TestFilterFieldExactMatch(t *testing.T) {
	all := sampleApplicants()
	got := listkit.Filter(all, listkit.Query{Fields: map[string]string{"typeVolunteer": "STAFF"}})
	if !reflect.DeepEqual(ids(got), []uint{1, 3}) {
		t.Fatalf("typeVolunteer=STAFF: want [1 3], got %v", ids(got))
	}
}

func TestFilterEmptyFieldValueIsUnconstrained(t *testing.T) {
	all := sampleApplicants()
	got := listkit.Filter(all, listkit.Query{Fields: map[string]string{"typeVolunteer": "", "status": ""}})
	if len(got) != 3 {
		t.Fatalf("empty field values must not constrain, got %d records", len(got))
	}
}

func TestFilterFieldsAreANDed(t *testing.T) {
	all := sampleApplicants()
	got := listkit.Filter(all, listkit.Query{Fields: map[string]string{"typeVolunteer": "STAFF", "status": "APPROVED"}})
	if !reflect.DeepEqual(ids(got), []uint{3}) {
		t.Fatalf("STAFF+APPROVED: want [3], got %v", ids(got))
	}
}

func TestFilterMissingFieldValueExcludesRecord(t *testing.T) {
	all := sampleApplicants()
	// record 2 has no university at all; it must not match any value
	got := listkit.Filter(all, listkit.Query{Fields: map[string]string{"university": "PUCP"}})
	if !reflect.DeepEqual(ids(got), []uint{1}) {
		t.Fatalf("university=PUCP: want [1], got %v", ids(got))
	}
}

func TestFilterTextAndFieldsCombine(t *testing.T) {
	all := sampleApplicants()
	got := listkit.Filter(all, listkit.Query{
		Text:   "yachay",
		Fields: map[string]string{"status": "APPROVED"},
	})
	if !reflect.DeepEqual(ids(got), []uint{2, 3}) {
		t.Fatalf("want [2 3], got %v", ids(got))
	}
}

func TestFilterDeterministic(t *testing.T) {
	all := sampleApplicants()
	q := listkit.Query{Text: "ya", Fields: map[string]string{"typeVolunteer": "STAFF"}}
	first := listkit.Filter(all, q)
	second := listkit.Filter(all, q)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs must produce the same output")
	}
}

func TestFilterEmptyCollection(t *testing.T) {
	got := listkit.Filter([]applicant{}, listkit.Query{Text: "maria"})
	if len(got) != 0 {
		t.Fatalf("empty input must give empty output, got %d", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	all := sampleApplicants()
	orig := sampleApplicants()
	_ = listkit.Filter(all, listkit.Query{Text: "jose"})
	if !reflect.DeepEqual(all, orig) {
		t.Fatal("input slice was mutated")
	}
}

func TestQueryIsZero(t *testing.T) {
	if !(listkit.Query{Text: "  ", Fields: map[string]string{"a": ""}}).IsZero() {
		t.Fatal("blank text + empty field values should be zero")
	}
	if (listkit.Query{Text: "x"}).IsZero() {
		t.Fatal("text term should make query non-zero")
	}
	if (listkit.Query{Fields: map[string]string{"a": "b"}}).IsZero() {
		t.Fatal("active field filter should make query non-zero")
	}
}
