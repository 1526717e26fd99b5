// Package export renders and writes the match export file and the detailed
// directory report.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
)

const (
	exportFileMode = 0o644
	timeLayout     = "2006-01-02T15:04:05"
)

// Exporter writes match exports through an afero filesystem, so tests run
// against an in-memory fs.
type Exporter struct {
	fs  afero.Fs
	now func() time.Time
}

// Option applies a configuration option to the Exporter.
type Option func(*Exporter)

// WithFs replaces the target filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Exporter) {
		if fs != nil {
			e.fs = fs
		}
	}
}

// WithClock replaces the timestamp source for the generated-at header.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Exporter writing to the OS filesystem by default.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		fs:  afero.NewOsFs(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RenderMatches builds the pipe-delimited export: a comment header followed
// by one Match.FileFormat record per line. The record lines are the
// compatibility surface; consumers parse them byte-for-byte.
func (e *Exporter) RenderMatches(matches []*model.Match) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Mentorship Matches Export\n")
	buf.WriteString("# Format: ID|MentorID|MentorName|MenteeID|MenteeName|Score|Skills|Status\n")
	fmt.Fprintf(&buf, "# Generated: %s\n", e.now().Format(timeLayout))
	buf.WriteString("\n")

	for _, match := range matches {
		buf.WriteString(match.FileFormat())
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// WriteMatches renders the export and writes it to path.
func (e *Exporter) WriteMatches(path string, matches []*model.Match) error {
	if err := afero.WriteFile(e.fs, path, e.RenderMatches(matches), exportFileMode); err != nil {
		return fmt.Errorf("write matches export %s: %w", path, err)
	}
	return nil
}

// RenderReport builds the human-readable directory report: summary counts,
// then mentors, mentees and matches sections.
func (e *Exporter) RenderReport(mentors []*model.Mentor, mentees []*model.Mentee, matches []*model.Match) []byte {
	active := 0
	for _, m := range matches {
		if m.Status == model.StatusActive {
			active++
		}
	}

	var buf bytes.Buffer
	buf.WriteString("MENTORSHIP MATCHER - DETAILED REPORT\n")
	fmt.Fprintf(&buf, "Generated: %s\n\n", e.now().Format(timeLayout))

	buf.WriteString("-- SUMMARY --\n")
	fmt.Fprintf(&buf, "Total Mentors: %d\n", len(mentors))
	fmt.Fprintf(&buf, "Total Mentees: %d\n", len(mentees))
	fmt.Fprintf(&buf, "Total Matches: %d\n", len(matches))
	fmt.Fprintf(&buf, "Active Matches: %d\n\n", active)

	buf.WriteString("-- MENTORS --\n")
	for _, m := range mentors {
		fmt.Fprintf(&buf, "  - %s\n", m)
	}
	buf.WriteString("\n-- MENTEES --\n")
	for _, m := range mentees {
		fmt.Fprintf(&buf, "  - %s\n", m)
	}
	buf.WriteString("\n-- MATCHES --\n")
	for _, m := range matches {
		fmt.Fprintf(&buf, "  - %s\n", m)
		fmt.Fprintf(&buf, "    Date: %s\n", m.CreatedAt.Format(timeLayout))
	}
	return buf.Bytes()
}

// WriteReport renders the detailed report and writes it to path.
func (e *Exporter) WriteReport(path string, mentors []*model.Mentor, mentees []*model.Mentee, matches []*model.Match) error {
	if err := afero.WriteFile(e.fs, path, e.RenderReport(mentors, mentees, matches), exportFileMode); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
