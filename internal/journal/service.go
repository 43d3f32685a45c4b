package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cleared-dev/aoiro/internal/id"
	"github.com/cleared-dev/aoiro/internal/model"
)

// Service stores journal entries as one journal.csv per month under a books root.
type Service struct {
	root string
	now  func() time.Time
}

// NewService creates a journal Service.
func NewService(root string) *Service {
	return &Service{root: root, now: time.Now}
}

// WithClock replaces the timestamp source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AddParams holds parameters for creating a journal entry.
type AddParams struct {
	Date           time.Time
	Lines          []model.JournalLine
	Vendor         string
	Description    string
	EvidenceStatus model.EvidenceStatus
	Evidence       []model.Evidence
}

// Add validates the lines, numbers the entry and its lines, and appends it to
// the month's journal.csv. Account codes are not checked against the chart.
func (s *Service) Add(params AddParams) (model.JournalEntry, error) {
	if err := Validate(params.Lines).Err(); err != nil {
		return model.JournalEntry{}, err
	}

	year := params.Date.Year()
	month := int(params.Date.Month())

	seq, err := s.NextEntrySeq(year, month)
	if err != nil {
		return model.JournalEntry{}, err
	}

	now := s.now().UTC().Truncate(time.Second)
	entry := model.JournalEntry{
		ID:             id.FormatEntryID(year, month, seq),
		Date:           params.Date,
		Vendor:         params.Vendor,
		Description:    params.Description,
		EvidenceStatus: params.EvidenceStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if entry.EvidenceStatus == "" {
		entry.EvidenceStatus = model.EvidenceNone
	}
	for _, ev := range params.Evidence {
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}
		entry.Evidence = append(entry.Evidence, ev)
	}
	for i, l := range params.Lines {
		l.ID = id.FormatLineID(entry.ID, i)
		entry.Lines = append(entry.Lines, l)
	}

	if err := s.appendEntry(year, month, entry); err != nil {
		return model.JournalEntry{}, err
	}
	return entry, nil
}

func (s *Service) appendEntry(year, month int, entry model.JournalEntry) error {
	journalPath := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendEntries(f, []model.JournalEntry{entry}); err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}

// ReadMonth reads all entries for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.JournalEntry, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}

// ReadYear reads every entry of a fiscal year in month order.
func (s *Service) ReadYear(year int) ([]model.JournalEntry, error) {
	var all []model.JournalEntry
	for month := 1; month <= 12; month++ {
		entries, err := s.ReadMonth(year, month)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// Get finds an entry by id.
func (s *Service) Get(entryID string) (model.JournalEntry, error) {
	year, month, _, err := id.ParseEntryID(entryID)
	if err != nil {
		return model.JournalEntry{}, err
	}
	entries, err := s.ReadMonth(year, month)
	if err != nil {
		return model.JournalEntry{}, err
	}
	for _, e := range entries {
		if e.ID == entryID {
			return e, nil
		}
	}
	return model.JournalEntry{}, fmt.Errorf("entry %s not found: %w", entryID, fs.ErrNotExist)
}

// NextEntrySeq returns the next available sequence number for a month.
func (s *Service) NextEntrySeq(year, month int) (int, error) {
	entries, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, e := range entries {
		_, _, seq, err := id.ParseEntryID(e.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
