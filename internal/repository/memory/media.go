package memory

import (
	"sort"

	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranscriptStore implements repository.TranscriptRepositoryInterface over the in-memory store
type TranscriptStore struct {
	s *Store
}

// Create creates a new transcript
func (t *TranscriptStore) Create(transcript *models.Transcript) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	stamp(&transcript.BaseModel)
	t.s.transcripts = append(t.s.transcripts, *transcript)
	return nil
}

// GetByID retrieves a transcript by ID
func (t *TranscriptStore) GetByID(id uuid.UUID) (*models.Transcript, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	for _, transcript := range t.s.transcripts {
		if transcript.ID == id {
			copy := transcript
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByKeyMomentID retrieves the transcript attached to a key moment
func (t *TranscriptStore) GetByKeyMomentID(keyMomentID uuid.UUID) (*models.Transcript, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	for _, transcript := range t.s.transcripts {
		if transcript.KeyMomentID == keyMomentID {
			copy := transcript
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByGameID retrieves all transcripts of a game
func (t *TranscriptStore) GetByGameID(gameID uuid.UUID) ([]models.Transcript, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var transcripts []models.Transcript
	for _, transcript := range t.s.transcripts {
		if transcript.GameID == gameID {
			transcripts = append(transcripts, transcript)
		}
	}
	return transcripts, nil
}

// GetPreviewByGameID retrieves the first transcripts of a game in creation
// order, bounded by limit
func (t *TranscriptStore) GetPreviewByGameID(gameID uuid.UUID, limit int) ([]models.Transcript, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var transcripts []models.Transcript
	for _, transcript := range t.s.transcripts {
		if transcript.GameID == gameID {
			transcripts = append(transcripts, transcript)
		}
	}
	sort.SliceStable(transcripts, func(i, j int) bool {
		return transcripts[i].CreatedAt.Before(transcripts[j].CreatedAt)
	})
	if len(transcripts) > limit {
		transcripts = transcripts[:limit]
	}
	return transcripts, nil
}

// Update updates a transcript
func (t *TranscriptStore) Update(transcript *models.Transcript) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := range t.s.transcripts {
		if t.s.transcripts[i].ID == transcript.ID {
			stamp(&transcript.BaseModel)
			t.s.transcripts[i] = *transcript
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes a transcript
func (t *TranscriptStore) Delete(id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := range t.s.transcripts {
		if t.s.transcripts[i].ID == id {
			t.s.transcripts = append(t.s.transcripts[:i], t.s.transcripts[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteByGameID deletes every transcript of a game
func (t *TranscriptStore) DeleteByGameID(gameID uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	kept := t.s.transcripts[:0]
	for _, transcript := range t.s.transcripts {
		if transcript.GameID != gameID {
			kept = append(kept, transcript)
		}
	}
	t.s.transcripts = kept
	return nil
}

// DeleteByKeyMomentID deletes the transcript attached to a key moment
func (t *TranscriptStore) DeleteByKeyMomentID(keyMomentID uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	kept := t.s.transcripts[:0]
	for _, transcript := range t.s.transcripts {
		if transcript.KeyMomentID != keyMomentID {
			kept = append(kept, transcript)
		}
	}
	t.s.transcripts = kept
	return nil
}

// FullGameRecordingStore implements repository.FullGameRecordingRepositoryInterface over the in-memory store
type FullGameRecordingStore struct {
	s *Store
}

// Create creates a new full game recording
func (f *FullGameRecordingStore) Create(recording *models.FullGameRecording) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.recordings {
		if existing.GameID == recording.GameID {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&recording.BaseModel)
	f.s.recordings = append(f.s.recordings, *recording)
	return nil
}

// GetByGameID retrieves the recording of a game
func (f *FullGameRecordingStore) GetByGameID(gameID uuid.UUID) (*models.FullGameRecording, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	for _, recording := range f.s.recordings {
		if recording.GameID == gameID {
			copy := recording
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Update updates a recording
func (f *FullGameRecordingStore) Update(recording *models.FullGameRecording) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for i := range f.s.recordings {
		if f.s.recordings[i].ID == recording.ID {
			stamp(&recording.BaseModel)
			f.s.recordings[i] = *recording
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// DeleteByGameID deletes the recording of a game
func (f *FullGameRecordingStore) DeleteByGameID(gameID uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	kept := f.s.recordings[:0]
	for _, recording := range f.s.recordings {
		if recording.GameID != gameID {
			kept = append(kept, recording)
		}
	}
	f.s.recordings = kept
	return nil
}
