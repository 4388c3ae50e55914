package models

import (
	"time"

	"github.com/dmitrijs2005/reportvault/internal/common"
)

// AssertionResult is a single test outcome inside a suite result.
type AssertionResult struct {
	FullName        string   `json:"fullName"`
	Status          string   `json:"status"`
	Duration        float64  `json:"duration,omitempty"`
	FailureMessages []string `json:"failureMessages,omitempty"`
}

// SuiteResult is one named test-suite run inside a report.
type SuiteResult struct {
	Name             string            `json:"name"`
	Status           string            `json:"status"`
	AssertionResults []AssertionResult `json:"assertionResults"`
}

// Report is an uploaded test-report document: the run summary
// counters plus the ordered per-suite results. Reports are immutable
// after upload; only the owner may delete one.
type Report struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`

	NumFailedTestSuites       int `json:"numFailedTestSuites"`
	NumFailedTests            int `json:"numFailedTests"`
	NumPassedTestSuites       int `json:"numPassedTestSuites"`
	NumPassedTests            int `json:"numPassedTests"`
	NumPendingTestSuites      int `json:"numPendingTestSuites"`
	NumPendingTests           int `json:"numPendingTests"`
	NumRuntimeErrorTestSuites int `json:"numRuntimeErrorTestSuites"`
	NumTodoTests              int `json:"numTodoTests"`
	NumTotalTestSuites        int `json:"numTotalTestSuites"`
	NumTotalTests             int `json:"numTotalTests"`

	StartTime      int64         `json:"startTime"`
	Success        bool          `json:"success"`
	WasInterrupted bool          `json:"wasInterrupted"`
	TestResults    []SuiteResult `json:"testResults"`

	// SnapshotKey is the object-storage key of the archived raw
	// snapshot payload; empty when the snapshot was discarded.
	SnapshotKey string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the structural invariants of a report before it is
// persisted: at least one suite result, at least one assertion per
// suite, and a full name and status on every assertion.
func (r *Report) Validate() error {
	v := &common.ValidationError{}

	if len(r.TestResults) == 0 {
		v.Add("testResults must contain at least one test suite result")
	}
	for _, suite := range r.TestResults {
		if len(suite.AssertionResults) == 0 {
			v.Add("assertionResults must contain at least one assertion")
			continue
		}
		for _, a := range suite.AssertionResults {
			if a.FullName == "" {
				v.Add("assertion fullName is required")
			}
			if a.Status == "" {
				v.Add("assertion status is required")
			}
		}
	}

	return v.OrNil()
}
