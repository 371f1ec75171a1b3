package test

import (
	"testing"
	"time"
)

// TestTimer measures how long a test step takes.
type TestTimer struct {
	t     *testing.T
	start time.Time
	name  string
}

// NewTestTimer starts a timer for the named step.
func NewTestTimer(t *testing.T, name string) *TestTimer {
	return &TestTimer{t: t, start: time.Now(), name: name}
}

// Stop logs the elapsed time and returns it.
func (tt *TestTimer) Stop() time.Duration {
	duration := time.Since(tt.start)
	tt.t.Logf("⏱️  %s took %v", tt.name, duration)
	return duration
}

// BenchmarkTest runs testFunc as a timed step and returns its duration.
func BenchmarkTest(t *testing.T, testName string, testFunc func()) time.Duration {
	t.Helper()
	timer := NewTestTimer(t, testName)
	testFunc()
	return timer.Stop()
}

// TestSuiteResult collects step durations for a summary at the end of a test.
type TestSuiteResult struct {
	SuiteName string
	Steps     []string
	TotalTime time.Duration
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

// Run times one step and adds it to the suite.
func (s *TestSuiteResult) Run(t *testing.T, step string, testFunc func()) {
	t.Helper()
	s.Steps = append(s.Steps, step)
	s.TotalTime += BenchmarkTest(t, s.SuiteName+"/"+step, testFunc)
}

// PrintSummary logs the number of steps and total time.
func (s *TestSuiteResult) PrintSummary(t *testing.T) {
	t.Logf("📊 %s: %d steps in %v", s.SuiteName, len(s.Steps), s.TotalTime)
}
