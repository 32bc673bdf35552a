package probe

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats results for output.
type Formatter interface {
	FormatCheck(w io.Writer, results []Result) error
	FormatVerify(w io.Writer, verifications []Verification) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatCheck formats check results as a table.
func (f *HumanFormatter) FormatCheck(w io.Writer, results []Result) error {
	maxPathLen := pathColumnWidth(len(results), func(i int) string { return results[i].Path })

	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "%-*s  %6s  %-24s  %10s\n", maxPathLen, "PATH", "STATUS", "CONTENT-TYPE", "SIZE")
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n", strings.Repeat("-", maxPathLen), strings.Repeat("-", 6), strings.Repeat("-", 24), strings.Repeat("-", 10))
	}

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			_, _ = fmt.Fprintf(w, "Error: %s - %v\n", r.Path, r.Err)
			continue
		}
		if f.Quiet {
			continue
		}
		_, _ = fmt.Fprintf(w, "%-*s  %6d  %-24s  %10s\n",
			maxPathLen,
			truncatePath(r.Path, maxPathLen),
			r.Status,
			r.ContentType,
			formatSize(r.Size),
		)
	}

	return nil
}

// FormatVerify formats verification results, one line per path.
func (f *HumanFormatter) FormatVerify(w io.Writer, verifications []Verification) error {
	failed := 0
	for i := range verifications {
		v := &verifications[i]
		switch {
		case v.Err != nil:
			failed++
			_, _ = fmt.Fprintf(w, "Error: %s - %v\n", v.Path, v.Err)
		case len(v.Mismatches) > 0:
			failed++
			_, _ = fmt.Fprintf(w, "FAIL  %s\n", v.Path)
			for _, m := range v.Mismatches {
				_, _ = fmt.Fprintf(w, "  %s\n", m)
			}
		case !f.Quiet:
			_, _ = fmt.Fprintf(w, "ok    %s (%d, %s, %s)\n", v.Path, v.Status, v.ContentType, formatSize(v.Size))
		}
	}

	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "\n%d path(s) checked, %d failed\n", len(verifications), failed)
	}

	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

type jsonResult struct {
	Path        string `json:"path"`
	Status      int    `json:"status,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
	Error       string `json:"error,omitempty"`
}

func toJSONResult(r Result) jsonResult {
	jr := jsonResult{
		Path:        r.Path,
		Status:      r.Status,
		ContentType: r.ContentType,
		Size:        r.Size,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}

// FormatCheck formats check results as JSON.
func (f *JSONFormatter) FormatCheck(w io.Writer, results []Result) error {
	out := make([]jsonResult, 0, len(results))
	for i := range results {
		out = append(out, toJSONResult(results[i]))
	}
	return writeJSON(w, out)
}

// FormatVerify formats verification results as JSON.
func (f *JSONFormatter) FormatVerify(w io.Writer, verifications []Verification) error {
	type jsonVerification struct {
		jsonResult
		OK                  bool     `json:"ok"`
		ExpectedStatus      int      `json:"expected_status"`
		ExpectedContentType string   `json:"expected_content_type"`
		ExpectedSize        int64    `json:"expected_size"`
		Mismatches          []string `json:"mismatches,omitempty"`
	}

	out := make([]jsonVerification, 0, len(verifications))
	for i := range verifications {
		v := &verifications[i]
		out = append(out, jsonVerification{
			jsonResult:          toJSONResult(v.Result),
			OK:                  v.OK(),
			ExpectedStatus:      v.ExpectedStatus,
			ExpectedContentType: v.ExpectedContentType,
			ExpectedSize:        v.ExpectedSize,
			Mismatches:          v.Mismatches,
		})
	}
	return writeJSON(w, out)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return writeJSON(w, map[string]string{"error": err.Error()})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pathColumnWidth(n int, path func(int) string) int {
	width := 4 // "PATH"
	for i := range n {
		if l := len(path(i)); l > width {
			width = l
		}
	}
	return min(width, 60)
}

func truncatePath(p string, width int) string {
	if len(p) > width {
		return p[:width-3] + "..."
	}
	return p
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
