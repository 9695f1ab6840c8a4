package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeFlowsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flows.jsonl")
	content := `{"on":"2020-01-01","amount":-1000,"currency":"USD"}
{"on":"2021-01-01","amount":1100,"currency":"USD"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	series, err := DecodeFlowsFile(path)
	if err != nil {
		t.Fatalf("DecodeFlowsFile() error = %v", err)
	}
	if len(series) != 2 {
		t.Errorf("DecodeFlowsFile() returned %d flows, want 2", len(series))
	}
}

func TestDecodeFlowsFile_Missing(t *testing.T) {
	if _, err := DecodeFlowsFile(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Error("DecodeFlowsFile() expected an error for a missing file, got none")
	}
}

func TestDecodeFlowsJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	content := `{"rows":[{"date":"2020-01-01","amount":-1000},{"date":"2021-01-01","amount":1100}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	series, err := DecodeFlowsJSONFile(path, "$.rows[*].date", "$.rows[*].amount", "EUR")
	if err != nil {
		t.Fatalf("DecodeFlowsJSONFile() error = %v", err)
	}
	if len(series) != 2 {
		t.Errorf("DecodeFlowsJSONFile() returned %d flows, want 2", len(series))
	}
	if series[0].Amount.Currency() != "EUR" {
		t.Errorf("extracted currency = %q, want EUR", series[0].Amount.Currency())
	}
}
