package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	t       func(string) string
	version string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.t = t
	}
}

// WithVersion sets the version shown in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a formatter. Labels are English unless a
// translator is given.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		t: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", f.t("Capture Summary"))

	f.table(&sb, [][2]string{
		{f.t("Session ID"), s.Session.ID},
		{f.t("Started"), formatTime(s.Session.StartedAt)},
		{f.t("Ended"), formatTime(s.Session.EndedAt)},
		{f.t("Duration"), s.Session.Duration().Round(time.Second).String()},
	})

	fmt.Fprintf(&sb, "## %s\n\n", f.t("Settings"))
	f.table(&sb, [][2]string{
		{f.t("Device"), fmt.Sprintf("%d", s.Settings.Device)},
		{f.t("Driver"), s.Settings.Driver},
		{f.t("Interval"), s.Settings.Interval.String()},
		{f.t("Output Directory"), s.Settings.OutputDir},
	})

	fmt.Fprintf(&sb, "## %s\n\n", f.t("Frames"))
	first, last := s.Frames.FirstFile, s.Frames.LastFile
	if s.Frames.Archived == 0 {
		first, last = f.t("None"), f.t("None")
	}
	f.table(&sb, [][2]string{
		{f.t("Frames Read"), fmt.Sprintf("%d", s.Frames.Reads)},
		{f.t("Warm-up Discarded"), fmt.Sprintf("%d", s.Frames.WarmupDiscarded)},
		{f.t("Empty Frames Dropped"), fmt.Sprintf("%d", s.Frames.Dropped)},
		{f.t("Frames Archived"), fmt.Sprintf("%d", s.Frames.Archived)},
		{f.t("Archived Size"), formatBytes(s.Frames.Bytes)},
		{f.t("First File"), first},
		{f.t("Last File"), last},
	})

	fmt.Fprintf(&sb, "## %s\n\n", f.t("Result"))
	if s.Err == "" {
		fmt.Fprintf(&sb, "%s\n\n", f.t("Completed"))
	} else {
		fmt.Fprintf(&sb, "%s: `%s`\n\n", f.t("Stopped with error"), s.Err)
	}

	sb.WriteString("---\n\n")
	generator := "chronocam"
	if f.version != "" {
		generator += " " + f.version
	}
	fmt.Fprintf(&sb, "%s %s, %s\n", f.t("Generated by"), generator, formatTime(s.GeneratedAt))

	return sb.String()
}

func (f *MarkdownFormatter) table(sb *strings.Builder, rows [][2]string) {
	fmt.Fprintf(sb, "| %s | %s |\n", f.t("Item"), f.t("Value"))
	sb.WriteString("|------|-------|\n")
	for _, r := range rows {
		fmt.Fprintf(sb, "| %s | %s |\n", r[0], r[1])
	}
	sb.WriteString("\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
