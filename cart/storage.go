package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoCart is returned by Storage.Load when nothing has been persisted yet.
var ErrNoCart = errors.New("cart: no stored cart")

// Storage persists a whole cart as one opaque blob under a fixed key.
// There are deliberately no partial-field operations: every mutation
// rewrites the entire snapshot, which makes concurrent writers (two tabs
// of the same session) last-writer-wins at cart granularity.
type Storage interface {
	Load() ([]byte, error)
	Save(blob []byte) error
}

// DBStorage keeps the blob in one cart_records row per session.
type DBStorage struct {
	db        *gorm.DB
	sessionID string
}

func NewDBStorage(db *gorm.DB, sessionID string) *DBStorage {
	return &DBStorage{db: db, sessionID: sessionID}
}

func (s *DBStorage) Load() ([]byte, error) {
	var rec models.CartRecord
	if err := s.db.First(&rec, "session_id = ?", s.sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCart
		}
		return nil, err
	}
	return rec.Payload, nil
}

func (s *DBStorage) Save(blob []byte) error {
	rec := models.CartRecord{
		SessionID: s.sessionID,
		Payload:   blob,
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

// Delete drops the persisted row, used after successful checkout.
func (s *DBStorage) Delete() error {
	return s.db.Delete(&models.CartRecord{}, "session_id = ?", s.sessionID).Error
}

// MemStorage is an in-memory Storage, used in tests.
type MemStorage struct {
	mu   sync.Mutex
	blob []byte
}

func (s *MemStorage) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blob == nil {
		return nil, ErrNoCart
	}
	out := make([]byte, len(s.blob))
	copy(out, s.blob)
	return out, nil
}

func (s *MemStorage) Save(blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = make([]byte, len(blob))
	copy(s.blob, blob)
	return nil
}
