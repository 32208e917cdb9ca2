package runner

import "testing"

func TestReportTextNilHistory(t *testing.T) {
	if got := reportText(nil); got != "" {
		t.Errorf("reportText(nil) = %q, want empty", got)
	}
}
