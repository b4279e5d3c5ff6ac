package models

import "time"

// RunResults contains the complete results of one search run
type RunResults struct {
	// Summary
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Root      string        `json:"root"`

	// Matches in listing order
	Matches []*Entry `json:"matches"`

	// Statistics
	Stats *RunStatistics `json:"statistics"`

	// Report path
	ReportPath string `json:"report_path,omitempty"`
}

// RunStatistics contains detailed run statistics
type RunStatistics struct {
	Archives          int `json:"archives"`
	FailedListings    int `json:"failed_listings"`
	EntriesListed     int `json:"entries_listed"`
	MatchCount        int `json:"match_count"`
	Extractions       int `json:"extractions"`
	FailedExtractions int `json:"failed_extractions"`
	InvertedFiles     int `json:"inverted_files"`
	FailedInversions  int `json:"failed_inversions"`
}

// AddMatch records a matched entry, preserving listing order
func (r *RunResults) AddMatch(e *Entry) {
	r.Matches = append(r.Matches, e)

	if r.Stats == nil {
		r.Stats = &RunStatistics{}
	}
	r.Stats.MatchCount++
}

// Failed reports whether any archive, entry or file failed during the run
func (r *RunResults) Failed() bool {
	if r.Stats == nil {
		return false
	}
	return r.Stats.FailedListings > 0 || r.Stats.FailedExtractions > 0 || r.Stats.FailedInversions > 0
}
