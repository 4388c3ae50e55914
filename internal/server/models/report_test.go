package models

import (
	"testing"
)

func validReport() *Report {
	return &Report{
		NumTotalTestSuites: 1,
		NumTotalTests:      1,
		NumPassedTests:     1,
		StartTime:          1700000000000,
		Success:            true,
		TestResults: []SuiteResult{
			{
				Name:   "suite.test.js",
				Status: "passed",
				AssertionResults: []AssertionResult{
					{FullName: "does the thing", Status: "passed", Duration: 12},
				},
			},
		},
	}
}

func TestReportValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validReport().Validate(); err != nil {
		t.Fatalf("expected valid report, got %v", err)
	}
}

func TestReportValidate_NoSuites(t *testing.T) {
	t.Parallel()

	r := validReport()
	r.TestResults = nil

	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for report without test suite results")
	}
}

func TestReportValidate_SuiteWithoutAssertions(t *testing.T) {
	t.Parallel()

	r := validReport()
	r.TestResults[0].AssertionResults = nil

	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for suite without assertion results")
	}
}

func TestReportValidate_AssertionMissingFields(t *testing.T) {
	t.Parallel()

	r := validReport()
	r.TestResults[0].AssertionResults = []AssertionResult{{Duration: 3}}

	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for assertion without fullName and status")
	}
}
