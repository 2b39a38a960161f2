package reconcile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bobby/zonesync/internal/dns/domain"
)

func TestDecide_TypeRequired(t *testing.T) {
	spec := RecordSpec{Zone: "foo.com.", Name: "new.foo.com.", Values: []string{"1.1.1.1"}}

	_, err := Decide(IntentPresent, spec, nil)
	if err == nil {
		t.Fatal("expected error for missing type, got nil")
	}
}

func TestDecide_ValueRequired(t *testing.T) {
	spec := RecordSpec{Zone: "foo.com.", Name: "new.foo.com.", Type: domain.RecordTypeA}

	for _, intent := range []Intent{IntentPresent, IntentAbsent} {
		if _, err := Decide(intent, spec, nil); err == nil {
			t.Errorf("intent %s: expected error for missing values, got nil", intent)
		}
	}
}

func TestDecide_ListNeverMutates(t *testing.T) {
	spec := RecordSpec{Zone: "foo.com.", Name: "new.foo.com.", Type: domain.RecordTypeA}

	// List requires no values and reports regardless of a match.
	decision, err := Decide(IntentList, spec, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if decision != Report {
		t.Errorf("decision = %v, want Report", decision)
	}

	matched := &domain.RecordSet{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 3600, Values: []string{"1.1.1.1"}}
	decision, err = Decide(IntentList, spec, matched)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if decision != Report {
		t.Errorf("decision = %v, want Report", decision)
	}
}

func TestDecide_Present(t *testing.T) {
	existing := &domain.RecordSet{
		Name:   "new.foo.com.",
		Type:   domain.RecordTypeA,
		TTL:    7200,
		Values: []string{"1.1.1.1", "2.2.2.2"},
	}

	tests := []struct {
		name    string
		spec    RecordSpec
		matched *domain.RecordSet
		want    Decision
		wantErr error
	}{
		{
			name: "no match creates",
			spec: RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1"}},
			want: CreateRecord,
		},
		{
			name:    "identical match is a no-op",
			spec:    RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1", "2.2.2.2"}},
			matched: existing,
			want:    NoChange,
		},
		{
			name:    "identical values in different order is a no-op",
			spec:    RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"2.2.2.2", "1.1.1.1"}},
			matched: existing,
			want:    NoChange,
		},
		{
			name:    "differing values without overwrite conflict",
			spec:    RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"3.3.3.3"}},
			matched: existing,
			wantErr: domain.ErrConflict,
		},
		{
			name:    "differing ttl without overwrite conflict",
			spec:    RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 300, Values: []string{"1.1.1.1", "2.2.2.2"}},
			matched: existing,
			wantErr: domain.ErrConflict,
		},
		{
			name:    "differing values with overwrite replaces",
			spec:    RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"3.3.3.3"}, Overwrite: true},
			matched: existing,
			want:    ReplaceRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := Decide(IntentPresent, tt.spec, tt.matched)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if decision != tt.want {
				t.Errorf("decision = %v, want %v", decision, tt.want)
			}
		})
	}
}

func TestDecide_Absent(t *testing.T) {
	spec := RecordSpec{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1"}}

	decision, err := Decide(IntentAbsent, spec, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if decision != NoChange {
		t.Errorf("decision without match = %v, want NoChange", decision)
	}

	matched := &domain.RecordSet{Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1"}}
	decision, err = Decide(IntentAbsent, spec, matched)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if decision != DeleteRecord {
		t.Errorf("decision with match = %v, want DeleteRecord", decision)
	}
}

func TestBuildChanges_ReplaceDeletesExistingValuesFirst(t *testing.T) {
	spec := RecordSpec{
		Name:      "new.foo.com.",
		Type:      domain.RecordTypeA,
		TTL:       300,
		Values:    []string{"3.3.3.3"},
		Overwrite: true,
	}
	matched := &domain.RecordSet{
		Name:   "new.foo.com.",
		Type:   domain.RecordTypeA,
		TTL:    7200,
		Values: []string{"1.1.1.1", "2.2.2.2"},
	}

	got := buildChanges(ReplaceRecord, spec, matched)

	want := []domain.Change{
		{Action: domain.ChangeActionDelete, Record: domain.RecordSet{
			Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1", "2.2.2.2"},
		}},
		{Action: domain.ChangeActionCreate, Record: domain.RecordSet{
			Name: "new.foo.com.", Type: domain.RecordTypeA, TTL: 300, Values: []string{"3.3.3.3"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildChanges_DeleteUsesCallerValues(t *testing.T) {
	// Deletes carry the caller-supplied values, not the fetched ones: the
	// provider matches deletes against its stored fingerprint and a mismatch
	// must surface as a provider error.
	spec := RecordSpec{Name: "old.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"9.9.9.9"}}
	matched := &domain.RecordSet{Name: "old.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1"}}

	got := buildChanges(DeleteRecord, spec, matched)

	want := []domain.Change{
		{Action: domain.ChangeActionDelete, Record: domain.RecordSet{
			Name: "old.foo.com.", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"9.9.9.9"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildChanges_CreateAppendsTrailingDot(t *testing.T) {
	spec := RecordSpec{Name: "new.foo.com", Type: domain.RecordTypeA, TTL: 7200, Values: []string{"1.1.1.1"}}

	got := buildChanges(CreateRecord, spec, nil)

	if len(got) != 1 {
		t.Fatalf("expected 1 change, got %d", len(got))
	}
	if got[0].Record.Name != "new.foo.com." {
		t.Errorf("name = %q, want %q", got[0].Record.Name, "new.foo.com.")
	}
}
