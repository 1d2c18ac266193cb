package types

import (
	"time"
)

// EntryResult records what happened to a single archive entry. Directory
// sources expand into several results sharing the same Source prefix.
type EntryResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Size        int64  `json:"size"`
	Directory   bool   `json:"directory,omitempty"`
	Error       string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Failed reports whether this entry could not be written
func (e EntryResult) Failed() bool {
	return e.Err != nil
}

// PackResult is the outcome of one packaging run
type PackResult struct {
	Output    string        `json:"output"`
	Entries   []EntryResult `json:"entries"`
	Written   int           `json:"written"`
	Failures  int           `json:"failures"`
	State     string        `json:"state"`
	Timestamp time.Time     `json:"timestamp"`
}

// AddEntry appends an entry result and updates the counters
func (r *PackResult) AddEntry(e EntryResult) {
	if e.Err != nil {
		e.Error = e.Err.Error()
		r.Failures++
	} else {
		r.Written++
	}
	r.Entries = append(r.Entries, e)
}

// Complete reports whether every entry was written
func (r *PackResult) Complete() bool {
	return r.Failures == 0
}

// FailedEntries returns only the entries that could not be written
func (r *PackResult) FailedEntries() []EntryResult {
	var failed []EntryResult
	for _, e := range r.Entries {
		if e.Failed() {
			failed = append(failed, e)
		}
	}
	return failed
}

// GenConfigResult holds the result of the genconfig command
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
