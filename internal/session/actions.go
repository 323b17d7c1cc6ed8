package session

import (
	"context"

	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/export"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/presentation"
)

// Settings returns the presentation settings.
func (s *Session) Settings() presentation.Settings {
	return s.settings
}

// SetSettings replaces the presentation settings. Invalid values fall back
// to their defaults.
func (s *Session) SetSettings(p presentation.Settings) {
	p = p.Normalize()
	if p == s.settings {
		return
	}
	s.settings = p
	s.events.Dispatch(event.TypeSettingsChanged, event.SettingsChangedData{Settings: p})
}

// AdjustFontSize changes the font size by delta, never going below 1.
func (s *Session) AdjustFontSize(delta int) {
	s.SetSettings(s.settings.WithFontSize(s.settings.FontSize + delta))
}

// CycleFontFamily selects the next allowed font family.
func (s *Session) CycleFontFamily() {
	p := s.settings
	p.FontFamily = presentation.NextFontFamily(p.FontFamily)
	s.SetSettings(p)
}

// Copy puts the whole buffer on the clipboard.
func (s *Session) Copy() error {
	return s.clipboard.Copy(s.store.Current())
}

// Paste inserts the clipboard text at the rune offset at and records the
// result. It returns the rune offset just after the inserted text, or at
// and false when the clipboard is empty.
func (s *Session) Paste(at int) (int, bool) {
	clip, ok := s.clipboard.Paste()
	if !ok {
		return at, false
	}
	runes := []rune(s.store.Current())
	if at < 0 {
		at = 0
	}
	if at > len(runes) {
		at = len(runes)
	}
	ins := []rune(clip)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:at]...)
	out = append(out, ins...)
	out = append(out, runes[at:]...)

	s.record(string(out), SourcePaste)
	return at + len(ins), true
}

// Save starts exporting the current buffer. The caller owns waiting on the
// job and must hand its result to FinishExport on the session's loop.
func (s *Session) Save(ctx context.Context) (*export.Job, error) {
	if s.exporter == nil {
		return nil, ErrNoExporter
	}
	job := s.exporter.Export(ctx, s.store.Current())
	s.events.Dispatch(event.TypeExportStarted, event.ExportStartedData{
		JobID:    job.ID.String(),
		Filename: s.exporter.Filename(),
	})
	return job, nil
}

// FinishExport reports an export result on the session's event bus.
func (s *Session) FinishExport(res export.Result) {
	if res.Err != nil {
		logger.Warnf("Session: export %s failed: %v", res.JobID, res.Err)
	}
	s.events.Dispatch(event.TypeExportFinished, event.ExportFinishedData{
		JobID: res.JobID.String(),
		Path:  res.Path,
		Err:   res.Err,
	})
}
