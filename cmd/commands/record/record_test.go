package record

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobby/zonesync/internal/config"
	"github.com/bobby/zonesync/internal/database"
	dnsdomain "github.com/bobby/zonesync/internal/dns/domain"
)

// --- Mock provider ---

type mockProvider struct {
	zones   []dnsdomain.Zone
	records map[string][]dnsdomain.RecordSet

	listZonesErr error
	changeErr    error

	lastZoneID  string
	lastChanges []dnsdomain.Change
}

func (m *mockProvider) ListZones(_ context.Context) ([]dnsdomain.Zone, error) {
	return m.zones, m.listZonesErr
}

func (m *mockProvider) ListRecordSets(_ context.Context, zoneID string) ([]dnsdomain.RecordSet, error) {
	return m.records[zoneID], nil
}

func (m *mockProvider) ChangeRecordSets(_ context.Context, zoneID string, changes []dnsdomain.Change) error {
	m.lastZoneID = zoneID
	m.lastChanges = changes
	return m.changeErr
}

func (m *mockProvider) CreateZone(_ context.Context, name string, _ dnsdomain.CreateZoneOpts) (dnsdomain.Zone, error) {
	return dnsdomain.Zone{Name: name, ID: "ZNEW"}, nil
}

func (m *mockProvider) DeleteZone(_ context.Context, _ string) error {
	return nil
}

// setupTestEnv points config and audit storage at temp files and swaps the
// provider factory for the mock.
func setupTestEnv(t *testing.T, mock *mockProvider) {
	t.Helper()

	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	database.SetPath(filepath.Join(t.TempDir(), "zonesync.db"))
	t.Cleanup(database.ResetPath)

	orig := newProvider
	newProvider = func(_ context.Context, _ string) (dnsdomain.Provider, error) {
		return mock, nil
	}
	t.Cleanup(func() { newProvider = orig })
}

// execRecord runs the given record subcommand args and returns stdout/stderr.
func execRecord(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func oneZone() []dnsdomain.Zone {
	return []dnsdomain.Zone{{Name: "example.com.", ID: "Z1"}}
}

// --- present tests ---

func TestPresentCommand_CreatesRecord(t *testing.T) {
	mock := &mockProvider{zones: oneZone()}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "reconciled") {
		t.Errorf("expected 'reconciled' in output:\n%s", stdout)
	}

	if mock.lastZoneID != "Z1" {
		t.Errorf("lastZoneID = %q, want %q", mock.lastZoneID, "Z1")
	}
	if len(mock.lastChanges) != 1 {
		t.Fatalf("expected 1 change, got %d", len(mock.lastChanges))
	}
	change := mock.lastChanges[0]
	if change.Action != dnsdomain.ChangeActionCreate {
		t.Errorf("action = %q, want CREATE", change.Action)
	}
	if change.Record.Name != "www.example.com." {
		t.Errorf("record name = %q, want trailing dot", change.Record.Name)
	}
	if change.Record.TTL != 3600 {
		t.Errorf("ttl = %d, want default 3600", change.Record.TTL)
	}
}

func TestPresentCommand_MultipleValues(t *testing.T) {
	mock := &mockProvider{zones: oneZone()}
	setupTestEnv(t, mock)

	_, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "2.2.2.2,1.1.1.1",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if len(mock.lastChanges) != 1 {
		t.Fatalf("expected 1 change, got %d", len(mock.lastChanges))
	}
	values := mock.lastChanges[0].Record.Values
	if len(values) != 2 || values[0] != "1.1.1.1" || values[1] != "2.2.2.2" {
		t.Errorf("values = %v, want sorted [1.1.1.1 2.2.2.2]", values)
	}
}

func TestPresentCommand_NoChange(t *testing.T) {
	mock := &mockProvider{
		zones: oneZone(),
		records: map[string][]dnsdomain.RecordSet{
			"Z1": {{Name: "www.example.com.", Type: dnsdomain.RecordTypeA, TTL: 3600, Values: []string{"1.2.3.4"}}},
		},
	}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "already up to date") {
		t.Errorf("expected 'already up to date' in output:\n%s", stdout)
	}
	if mock.lastChanges != nil {
		t.Errorf("expected no changes, got %v", mock.lastChanges)
	}
}

func TestPresentCommand_ConflictWithoutOverwrite(t *testing.T) {
	mock := &mockProvider{
		zones: oneZone(),
		records: map[string][]dnsdomain.RecordSet{
			"Z1": {{Name: "www.example.com.", Type: dnsdomain.RecordTypeA, TTL: 3600, Values: []string{"9.9.9.9"}}},
		},
	}
	setupTestEnv(t, mock)

	_, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if !strings.Contains(stderr, "overwrite") {
		t.Errorf("expected overwrite hint in stderr:\n%s", stderr)
	}
	if mock.lastChanges != nil {
		t.Errorf("expected no changes, got %v", mock.lastChanges)
	}
}

func TestPresentCommand_OverwriteReplaces(t *testing.T) {
	mock := &mockProvider{
		zones: oneZone(),
		records: map[string][]dnsdomain.RecordSet{
			"Z1": {{Name: "www.example.com.", Type: dnsdomain.RecordTypeA, TTL: 7200, Values: []string{"9.9.9.9"}}},
		},
	}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
		"--overwrite",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "reconciled") {
		t.Errorf("expected 'reconciled' in output:\n%s", stdout)
	}
	if len(mock.lastChanges) != 2 {
		t.Fatalf("expected delete+create, got %d changes", len(mock.lastChanges))
	}
	if mock.lastChanges[0].Action != dnsdomain.ChangeActionDelete {
		t.Errorf("first action = %q, want DELETE", mock.lastChanges[0].Action)
	}
	if mock.lastChanges[0].Record.TTL != 7200 {
		t.Errorf("delete ttl = %d, want existing 7200", mock.lastChanges[0].Record.TTL)
	}
	if mock.lastChanges[1].Action != dnsdomain.ChangeActionCreate {
		t.Errorf("second action = %q, want CREATE", mock.lastChanges[1].Action)
	}
}

func TestPresentCommand_MissingRequiredFlags(t *testing.T) {
	mock := &mockProvider{zones: oneZone()}
	setupTestEnv(t, mock)

	_, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
	)
	if !strings.Contains(stderr, "value") {
		t.Errorf("expected 'value' flag error in stderr:\n%s", stderr)
	}
}

func TestPresentCommand_InvalidType(t *testing.T) {
	mock := &mockProvider{zones: oneZone()}
	setupTestEnv(t, mock)

	_, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "BOGUS",
		"--value", "1.2.3.4",
	)
	if !strings.Contains(stderr, "unsupported record type") {
		t.Errorf("expected 'unsupported record type' in stderr:\n%s", stderr)
	}
}

func TestPresentCommand_ZoneNotFound(t *testing.T) {
	mock := &mockProvider{}
	setupTestEnv(t, mock)

	_, stderr := execRecord(t, "present", "nosuch.com",
		"--record", "www.nosuch.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if !strings.Contains(stderr, "hosted zone not found") {
		t.Errorf("expected 'hosted zone not found' in stderr:\n%s", stderr)
	}
}

func TestPresentCommand_ProviderError(t *testing.T) {
	mock := &mockProvider{
		zones:     oneZone(),
		changeErr: fmt.Errorf("route53: values do not match"),
	}
	setupTestEnv(t, mock)

	_, stderr := execRecord(t, "present", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if !strings.Contains(stderr, "values do not match") {
		t.Errorf("expected provider error in stderr:\n%s", stderr)
	}
}

// --- absent tests ---

func TestAbsentCommand_DeletesRecord(t *testing.T) {
	mock := &mockProvider{
		zones: oneZone(),
		records: map[string][]dnsdomain.RecordSet{
			"Z1": {{Name: "www.example.com.", Type: dnsdomain.RecordTypeA, TTL: 3600, Values: []string{"1.2.3.4"}}},
		},
	}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "absent", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "removed") {
		t.Errorf("expected 'removed' in output:\n%s", stdout)
	}
	if len(mock.lastChanges) != 1 {
		t.Fatalf("expected 1 change, got %d", len(mock.lastChanges))
	}
	if mock.lastChanges[0].Action != dnsdomain.ChangeActionDelete {
		t.Errorf("action = %q, want DELETE", mock.lastChanges[0].Action)
	}
}

func TestAbsentCommand_AlreadyAbsent(t *testing.T) {
	mock := &mockProvider{zones: oneZone()}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "absent", "example.com",
		"--record", "www.example.com",
		"--type", "A",
		"--value", "1.2.3.4",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "already absent") {
		t.Errorf("expected 'already absent' in output:\n%s", stdout)
	}
	if mock.lastChanges != nil {
		t.Errorf("expected no changes, got %v", mock.lastChanges)
	}
}

// --- list tests ---

func TestListCommand_ReportsRecord(t *testing.T) {
	mock := &mockProvider{
		zones: oneZone(),
		records: map[string][]dnsdomain.RecordSet{
			"Z1": {{Name: "www.example.com.", Type: dnsdomain.RecordTypeA, TTL: 300, Values: []string{"2.2.2.2", "1.1.1.1"}}},
		},
	}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "list", "example.com",
		"--record", "www.example.com",
		"--type", "A",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	for _, want := range []string{`"1.1.1.1,2.2.2.2"`, `"ttl": 300`, `"www.example.com."`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestListCommand_NoMatch(t *testing.T) {
	mock := &mockProvider{zones: oneZone()}
	setupTestEnv(t, mock)

	stdout, stderr := execRecord(t, "list", "example.com",
		"--record", "missing.example.com",
		"--type", "A",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"record": ""`) {
		t.Errorf("expected empty set in output:\n%s", stdout)
	}
	if mock.lastChanges != nil {
		t.Errorf("list must not mutate, got %v", mock.lastChanges)
	}
}
