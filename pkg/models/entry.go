package models

// Entry represents one file recorded inside an archive
type Entry struct {
	Archive string `json:"archive"` // Path of the owning archive
	Name    string `json:"name"`    // Entry name as reported by the tool, quotes stripped
}

// Outcome contains the raw result of one external tool invocation
type Outcome struct {
	Command string `json:"command"`          // Command line that was executed
	Output  string `json:"output,omitempty"` // Combined stdout and stderr
	Success bool   `json:"success"`          // Whether the tool exited zero
}
