package bench

import (
	"strings"
	"testing"
)

func TestRunCoversEveryResolvedInstance(t *testing.T) {
	results := Run([]byte("pw"), []byte("saltsaltsaltsalt"), nil, 32)

	if len(results) == 0 {
		t.Fatal("Run returned no results")
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("instance %s: Hash error: %v", r.Name, r.Err)
		}
		if r.Duration <= 0 {
			t.Fatalf("instance %s: Duration = %v, want > 0", r.Name, r.Duration)
		}
	}
}

func TestSummaryRendersEveryResult(t *testing.T) {
	results := []Result{{Name: "Dragonfly"}}
	out := Summary(results)
	if !strings.Contains(out, "Dragonfly") {
		t.Fatalf("Summary output missing instance name: %q", out)
	}
}
