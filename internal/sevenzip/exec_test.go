package sevenzip

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestListArgs(t *testing.T) {
	tests := []struct {
		name     string
		archive  string
		password string
		expected []string
	}{
		{
			name:     "Without password",
			archive:  "backup.7z",
			password: "",
			expected: []string{"l", "-r", "-ba", "backup.7z"},
		},
		{
			name:     "With password",
			archive:  "backup.7z",
			password: "s3cret",
			expected: []string{"l", "-r", "-ba", "-ps3cret", "backup.7z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listArgs(tt.archive, tt.password); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("listArgs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractEntryArgs(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected []string
	}{
		{
			name:     "Without password",
			password: "",
			expected: []string{"e", "backup.7z", "data/secret.bin", "-oout", "-y"},
		},
		{
			name:     "With password",
			password: "s3cret",
			expected: []string{"e", "backup.7z", "data/secret.bin", "-oout", "-y", "-ps3cret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractEntryArgs("backup.7z", "data/secret.bin", "out", tt.password)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractEntryArgs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractAllArgs(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected []string
	}{
		{
			name:     "Without password",
			password: "",
			expected: []string{"x", "backup.7z", "-oout", "-y"},
		},
		{
			name:     "With password",
			password: "s3cret",
			expected: []string{"x", "backup.7z", "-oout", "-y", "-ps3cret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractAllArgs("backup.7z", "out", tt.password)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractAllArgs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExecToolListMissingTool(t *testing.T) {
	logger := zap.NewNop()
	tool := NewExecTool("/nonexistent/bolt-test-tool", logger)

	names, err := tool.List("backup.7z", "")
	if err == nil {
		t.Fatal("List() with missing tool expected error, got nil")
	}

	if names != nil {
		t.Errorf("List() with missing tool yielded entries: %v", names)
	}
}

func TestExecToolExtractMissingTool(t *testing.T) {
	logger := zap.NewNop()
	tool := NewExecTool("/nonexistent/bolt-test-tool", logger)

	outcome, err := tool.ExtractEntry("backup.7z", "a.txt", t.TempDir(), "")
	if err == nil {
		t.Fatal("ExtractEntry() with missing tool expected error, got nil")
	}

	if outcome == nil {
		t.Fatal("ExtractEntry() returned nil outcome")
	}

	if outcome.Success {
		t.Error("ExtractEntry() outcome.Success = true, want false")
	}
}
