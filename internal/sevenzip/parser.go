package sevenzip

import "strings"

// The tool's brief listing prints one entry per line as
//
//	Date Time Attr Size Compressed Name
//
// Name is the last field and may itself contain spaces, so everything from
// the name column onward belongs to the entry. Rows with fewer fields are
// headers, separators or directory rows and are skipped. Parsing by field
// count rather than a byte offset keeps the parser stable when the tool
// changes its column widths.
//
// Known limits of field tokenization: runs of consecutive spaces inside a
// name collapse to one, and a data row whose Compressed column is blank
// (solid archives) drops below the minimum field count and is skipped.
const minListingFields = 6

// ParseListing converts raw listing output into entry names, preserving the
// tool's listing order. Duplicate names across nested paths are possible and
// are kept as-is.
func ParseListing(raw string) []string {
	var names []string

	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < minListingFields {
			continue
		}

		name := strings.Join(fields[minListingFields-1:], " ")
		name = strings.ReplaceAll(name, "\"", "")
		names = append(names, name)
	}

	return names
}
