// HTML report rendering from an embedded template.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"deconflict/internal/detect"
)

//go:embed templates/report.html
var reportTemplates embed.FS

type htmlConflict struct {
	Index    int
	Conflict string
	Severity detect.Severity
}

type htmlReport struct {
	RunID       string
	GeneratedAt string
	Clear       bool
	Conflicts   []htmlConflict
}

// RenderHTML writes a standalone HTML report of a check result to outPath.
func RenderHTML(runID string, res detect.Result, outPath string) error {
	tpl, err := template.ParseFS(reportTemplates, "templates/report.html")
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	data := htmlReport{
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Clear:       res.Clear,
	}
	for i, c := range res.Conflicts {
		data.Conflicts = append(data.Conflicts, htmlConflict{
			Index:    i + 1,
			Conflict: c.String(),
			Severity: detect.Classify(c),
		})
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := tpl.Execute(f, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
