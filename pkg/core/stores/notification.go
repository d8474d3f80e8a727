package stores

import (
	"slices"
	"sync"

	"github.com/jakechorley/activibe/pkg/core/model"
)

// NotificationStore holds the inbox. The unread count is recomputed from the
// items on every mutation and never tracked on its own.
type NotificationStore struct {
	mu sync.Mutex

	items  []model.NotificationItem
	unread int
}

func NewNotificationStore(items []model.NotificationItem) *NotificationStore {
	s := &NotificationStore{items: slices.Clone(items)}
	s.unread = countUnread(s.items)
	return s
}

// MarkRead flags the item with the given id as read. Unknown ids change nothing.
func (s *NotificationStore) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
		}
	}
	s.unread = countUnread(s.items)
}

func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
	s.unread = 0
}

func (s *NotificationStore) Items() []model.NotificationItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *NotificationStore) Unread() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unread
}

func countUnread(items []model.NotificationItem) int {
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n
}
