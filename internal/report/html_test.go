package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deconflict/internal/detect"
)

func TestRenderHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	if err := RenderHTML("run-1", sampleResult(), out); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"run-1", "BRAVO", "CHARLIE", "critical"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(html, "CLEAR") {
		t.Error("report with conflicts should not claim a clear verdict")
	}
}

func TestRenderHTMLClear(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	if err := RenderHTML("run-2", detect.Result{Clear: true}, out); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "CLEAR") {
		t.Error("clear report missing verdict")
	}
}
