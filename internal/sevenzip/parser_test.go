package sevenzip

import (
	"reflect"
	"testing"
)

func TestParseListing(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "Empty input",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Single entry",
			raw:      "2024-01-02 10:30:01 ....A         1024          512  readme.txt\n",
			expected: []string{"readme.txt"},
		},
		{
			name: "Nested path entries keep listing order",
			raw: "2024-01-02 10:30:01 ....A         1024          512  readme.txt\n" +
				"2024-01-02 10:30:02 ....A         4096         2048  data/secret.bin\n",
			expected: []string{"readme.txt", "data/secret.bin"},
		},
		{
			name:     "Name with embedded spaces",
			raw:      "2024-01-02 10:30:01 ....A         1024          512  My Documents/annual report.pdf\n",
			expected: []string{"My Documents/annual report.pdf"},
		},
		{
			name:     "Quotes stripped from name",
			raw:      "2024-01-02 10:30:01 ....A         1024          512  \"quoted name.txt\"\n",
			expected: []string{"quoted name.txt"},
		},
		{
			name: "Malformed rows skipped",
			raw: "------------------- ----- ------------ ------------\n" +
				"2024-01-02 10:30:01 ....A         1024          512  kept.txt\n" +
				"short line\n" +
				"\n" +
				"2024-01-02 10:30:02 ....A         2048         1024  also/kept.txt\n",
			expected: []string{"kept.txt", "also/kept.txt"},
		},
		{
			name:     "Directory row without compressed size skipped",
			raw:      "2024-01-02 10:30:01 D....            0  data\n",
			expected: nil,
		},
		{
			name: "Duplicate names not deduplicated",
			raw: "2024-01-02 10:30:01 ....A         1024          512  a/config.ini\n" +
				"2024-01-02 10:30:02 ....A         1024          512  b/config.ini\n" +
				"2024-01-02 10:30:03 ....A         1024          512  a/config.ini\n",
			expected: []string{"a/config.ini", "b/config.ini", "a/config.ini"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListing(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseListing() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseListingCounts(t *testing.T) {
	// N well-formed rows and M malformed rows must yield exactly N names
	raw := "header junk\n" +
		"2024-01-02 10:30:01 ....A 1 1 one.txt\n" +
		"-----\n" +
		"2024-01-02 10:30:02 ....A 2 2 two.txt\n" +
		"2024-01-02 10:30:03 ....A 3 3 three.txt\n" +
		"trailing summary\n"

	got := ParseListing(raw)
	if len(got) != 3 {
		t.Fatalf("ParseListing() yielded %d names, want 3: %v", len(got), got)
	}
}
