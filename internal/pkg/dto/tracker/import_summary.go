package tracker

import (
	"fmt"
	"strings"
)

// Import envelope returned by the platform's write endpoints: either a list
// of per-item import summaries (create flows) or aggregate counters (bulk
// update flows).

type ImportConflict struct {
	Object string `json:"object"`
	Value  string `json:"value"`
}

type ImportCount struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Ignored  int `json:"ignored"`
	Deleted  int `json:"deleted"`
}

type ImportSummary struct {
	Status      string           `json:"status"`
	Reference   string           `json:"reference,omitempty"`
	Description string           `json:"description,omitempty"`
	Conflicts   []ImportConflict `json:"conflicts,omitempty"`
	ImportCount ImportCount      `json:"importCount"`
}

type ImportResponseBody struct {
	Status          string          `json:"status,omitempty"`
	Description     string          `json:"description,omitempty"`
	Imported        int             `json:"imported"`
	Updated         int             `json:"updated"`
	Ignored         int             `json:"ignored"`
	Deleted         int             `json:"deleted"`
	ImportSummaries []ImportSummary `json:"importSummaries,omitempty"`
}

type ImportResponse struct {
	HTTPStatusCode int                `json:"httpStatusCode,omitempty"`
	Status         string             `json:"status,omitempty"`
	Message        string             `json:"message,omitempty"`
	Response       ImportResponseBody `json:"response"`
}

// FirstReference returns the reference id of the first import summary, empty
// when the platform reported none.
func (r *ImportResponse) FirstReference() string {
	for _, summary := range r.Response.ImportSummaries {
		if summary.Reference != "" {
			return summary.Reference
		}
	}
	return ""
}

// ConflictList flattens every reported conflict into "object: value" strings.
func (r *ImportResponse) ConflictList() []string {
	var conflicts []string
	for _, summary := range r.Response.ImportSummaries {
		for _, conflict := range summary.Conflicts {
			conflicts = append(conflicts, fmt.Sprintf("%s: %s", conflict.Object, conflict.Value))
		}
	}
	return conflicts
}

// ComposedDescription joins the envelope message with every summary
// description into one server-provided failure description.
func (r *ImportResponse) ComposedDescription() string {
	parts := []string{}
	if r.Message != "" {
		parts = append(parts, r.Message)
	}
	if r.Response.Description != "" {
		parts = append(parts, r.Response.Description)
	}
	for _, summary := range r.Response.ImportSummaries {
		if summary.Description != "" {
			parts = append(parts, summary.Description)
		}
	}
	return strings.Join(parts, "; ")
}

// Counters returns the aggregate updated/ignored pair, preferring the
// envelope counters and falling back to the per-summary import counts.
func (r *ImportResponse) Counters() (updated, ignored int) {
	updated = r.Response.Updated
	ignored = r.Response.Ignored
	if updated == 0 && ignored == 0 {
		for _, summary := range r.Response.ImportSummaries {
			updated += summary.ImportCount.Updated
			ignored += summary.ImportCount.Ignored
		}
	}
	return updated, ignored
}
