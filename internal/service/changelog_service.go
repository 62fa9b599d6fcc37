package service

import (
	"sync"
	"time"

	"agritrace/internal/model"
)

// ChangeLogService tracks who changed what on the admin surface. Entries are
// held in memory, newest first, and reset with the rest of the state.
type ChangeLogService interface {
	Record(user *model.User, action, entityID, entityName, details string)
	List(page, limit int) ([]model.ChangeLog, int64)
}

type changeLogService struct {
	mu      sync.Mutex
	entries []model.ChangeLog
}

// NewChangeLogService creates an empty change log.
func NewChangeLogService() ChangeLogService {
	return &changeLogService{}
}

func (s *changeLogService) Record(user *model.User, action, entityID, entityName, details string) {
	entry := model.ChangeLog{
		ID:         newID("log"),
		UserName:   "System",
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if user != nil {
		entry.UserID = user.ID
		entry.UserName = user.Name
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// List returns a page of entries ordered most recent first.
func (s *changeLogService) List(page, limit int) ([]model.ChangeLog, int64) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.entries))
	start := (page - 1) * limit
	if start >= len(s.entries) {
		return []model.ChangeLog{}, total
	}
	end := start + limit
	if end > len(s.entries) {
		end = len(s.entries)
	}

	out := make([]model.ChangeLog, 0, end-start)
	for i := len(s.entries) - 1 - start; i >= len(s.entries)-end; i-- {
		out = append(out, s.entries[i])
	}
	return out, total
}
