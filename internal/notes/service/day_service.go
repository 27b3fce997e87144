package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"notedays/internal/logs"
	"notedays/internal/notes"
	"notedays/internal/store"
)

// DayService reads and writes a date's note list. It keeps no state of
// its own; every call goes straight to the store.
type DayService interface {
	Load(dateKey string) ([]notes.Note, error)
	Save(dateKey string, list []notes.Note) error
	Dates() ([]string, error)
}

type dayServiceImpl struct {
	store store.Store
}

// NewDayService creates a DayService backed by s.
func NewDayService(s store.Store) DayService {
	return &dayServiceImpl{store: s}
}

func (s *dayServiceImpl) Load(dateKey string) ([]notes.Note, error) {
	if _, err := notes.ParseDateKey(dateKey); err != nil {
		return nil, err
	}

	raw, ok, err := s.store.Get(dateKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", dateKey, err)
	}
	if !ok {
		return []notes.Note{}, nil
	}

	var records []notes.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logs.Logger.Printf("Warning: malformed notes for %s, treating as empty: %v", dateKey, err)
		return []notes.Note{}, nil
	}
	return notes.FromRecords(records), nil
}

func (s *dayServiceImpl) Save(dateKey string, list []notes.Note) error {
	if _, err := notes.ParseDateKey(dateKey); err != nil {
		return err
	}

	data, err := json.Marshal(notes.ToRecords(list))
	if err != nil {
		return fmt.Errorf("encode %s: %w", dateKey, err)
	}
	if err := s.store.Set(dateKey, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", dateKey, err)
	}
	logs.Logger.Printf("Saved %d note(s) for %s", len(list), dateKey)
	return nil
}

func (s *dayServiceImpl) Dates() ([]string, error) {
	keys, err := s.store.Keys()
	if err != nil {
		return nil, err
	}
	var dates []string
	for _, k := range keys {
		if _, err := notes.ParseDateKey(k); err == nil {
			dates = append(dates, k)
		}
	}
	sort.Strings(dates)
	return dates, nil
}
