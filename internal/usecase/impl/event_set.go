package impl

import (
	"sort"
	"time"

	"dashboard/internal/domain/entity"
)

// eventUpdate is one write into the event set. A push carries the full row; a
// read acknowledgement carries only the id and the read time.
type eventUpdate struct {
	id     string
	row    *entity.Notification
	readAt *time.Time
}

func pushUpdate(n *entity.Notification) eventUpdate {
	return eventUpdate{id: n.ID, row: n}
}

func readAck(id string, readAt time.Time) eventUpdate {
	return eventUpdate{id: id, readAt: &readAt}
}

// eventSet holds the known notifications of one recipient keyed by id.
// It is not safe for concurrent use; the channel serializes access.
type eventSet struct {
	events map[string]*entity.Notification
	// reads acknowledged before the row itself arrived.
	pendingReads map[string]time.Time
}

func newEventSet() *eventSet {
	return &eventSet{
		events:       make(map[string]*entity.Notification),
		pendingReads: make(map[string]time.Time),
	}
}

// merge folds an update into the set and returns the stored row (nil when the
// update is an acknowledgement for an unknown id) and whether IsRead or the row changed.
// IsRead is monotonic: the stored value is always old || new.
func (s *eventSet) merge(u eventUpdate) (*entity.Notification, bool) {
	existing := s.events[u.id]

	if u.row == nil {
		if u.readAt == nil {
			return existing, false
		}
		if existing == nil {
			if _, ok := s.pendingReads[u.id]; !ok {
				s.pendingReads[u.id] = *u.readAt
			}

			return nil, false
		}
		if existing.IsRead {
			return existing, false
		}

		updated := existing.Clone()
		updated.IsRead = true
		updated.ReadAt = cloneTime(u.readAt)
		s.events[u.id] = updated

		return updated, true
	}

	row := u.row.Clone()
	if readAt, ok := s.pendingReads[u.id]; ok {
		delete(s.pendingReads, u.id)
		row.IsRead = true
		if row.ReadAt == nil {
			row.ReadAt = &readAt
		}
	}
	if existing != nil && existing.IsRead {
		row.IsRead = true
		if row.ReadAt == nil {
			row.ReadAt = cloneTime(existing.ReadAt)
		}
	}
	if u.readAt != nil && !row.IsRead {
		row.IsRead = true
		row.ReadAt = cloneTime(u.readAt)
	}

	s.events[u.id] = row

	return row, true
}

func (s *eventSet) unreadCount() int {
	count := 0
	for _, n := range s.events {
		if !n.IsRead {
			count++
		}
	}

	return count
}

func (s *eventSet) unreadIDs() []string {
	ids := make([]string, 0, len(s.events))
	for id, n := range s.events {
		if !n.IsRead {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// list returns clones sorted newest first, ties broken by id.
func (s *eventSet) list() []*entity.Notification {
	result := make([]*entity.Notification, 0, len(s.events))
	for _, n := range s.events {
		result = append(result, n.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}

		return result[i].ID < result[j].ID
	})

	return result
}

func (s *eventSet) len() int {
	return len(s.events)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}
