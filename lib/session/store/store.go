package sessionstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"talent-scout-backend/lib/intake"
)

// Entry сессия кандидата в памяти процесса
type Entry struct {
	ID         string
	State      intake.SessionState
	LastAccess time.Time
}

type Provider interface {
	Create() Entry
	Get(id string) (Entry, bool)
	Save(entry Entry) bool
	Delete(id string) bool
	DeleteIdleSince(before time.Time) int
	Count() int
}

func NewInstance() Provider {
	return &impl{
		list: map[string]Entry{},
		now:  time.Now,
	}
}

type impl struct {
	mu   sync.Mutex
	list map[string]Entry
	now  func() time.Time
}

func (i *impl) Create() Entry {
	i.mu.Lock()
	defer i.mu.Unlock()
	entry := Entry{
		ID:         uuid.New().String(),
		State:      intake.NewSessionState(),
		LastAccess: i.now(),
	}
	i.list[entry.ID] = entry
	return entry
}

func (i *impl) Get(id string) (Entry, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	entry, ok := i.list[id]
	if !ok {
		return Entry{}, false
	}
	entry.LastAccess = i.now()
	i.list[id] = entry
	return entry, true
}

// Save обновляет только существующую сессию, удаленная за время запроса не восстанавливается
func (i *impl) Save(entry Entry) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.list[entry.ID]; !ok {
		return false
	}
	entry.LastAccess = i.now()
	i.list[entry.ID] = entry
	return true
}

func (i *impl) Delete(id string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.list[id]; !ok {
		return false
	}
	delete(i.list, id)
	return true
}

func (i *impl) DeleteIdleSince(before time.Time) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	count := 0
	for id, entry := range i.list {
		if entry.LastAccess.Before(before) {
			delete(i.list, id)
			count++
		}
	}
	return count
}

func (i *impl) Count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.list)
}
