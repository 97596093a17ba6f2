package service

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/surajmeruva0786/DigiGov10/internal/events"
	"github.com/surajmeruva0786/DigiGov10/internal/model"
	"github.com/surajmeruva0786/DigiGov10/internal/search"
	"github.com/surajmeruva0786/DigiGov10/internal/stats"
	"github.com/surajmeruva0786/DigiGov10/internal/store"
)

// AnonymousSubmitter is recorded when a complaint is filed without a session.
const AnonymousSubmitter = "anonymous"

// ComplaintService owns the ordered complaint collection: insertion order,
// newest appended last, mirrored to the store after every mutation. It is the
// sole writer of the `complaints` key. The mutex makes each
// read-modify-persist cycle atomic under concurrent requests.
type ComplaintService struct {
	mu         sync.Mutex
	store      store.Store
	publisher  events.ComplaintEventPublisher
	complaints []model.Complaint
}

// NewComplaintService loads the persisted collection. A missing or corrupt
// collection starts empty. publisher may be nil.
func NewComplaintService(ctx context.Context, st store.Store, publisher events.ComplaintEventPublisher) (*ComplaintService, error) {
	s := &ComplaintService{store: st, publisher: publisher}
	if err := st.Load(ctx, store.KeyComplaints, &s.complaints); err != nil {
		return nil, fmt.Errorf("load complaints: %w", err)
	}
	return s, nil
}

// newComplaintID returns "#" plus a pseudo-random 5-digit number in
// [10000,99999]. Uniqueness is not checked; collisions are possible though
// unlikely at local scale.
func newComplaintID() string {
	return fmt.Sprintf("#%d", 10000+rand.Intn(90000))
}

// Submit appends a new pending complaint and persists the collection.
// Field presence is validated at the handler boundary, not here. On persist
// failure the append is rolled back and the error returned.
func (s *ComplaintService) Submit(ctx context.Context, subject string, sector model.Sector, description, submitter string) (model.Complaint, error) {
	if submitter == "" {
		submitter = AnonymousSubmitter
	}
	c := model.Complaint{
		ID:          newComplaintID(),
		Subject:     subject,
		Sector:      sector,
		Description: description,
		Status:      model.StatusPending,
		Date:        time.Now().UTC(),
		UserID:      submitter,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaints = append(s.complaints, c)
	if err := s.store.Save(ctx, store.KeyComplaints, s.complaints); err != nil {
		s.complaints = s.complaints[:len(s.complaints)-1]
		return model.Complaint{}, fmt.Errorf("save complaints: %w", err)
	}
	if s.publisher != nil {
		s.publisher.PublishComplaintEvent(ctx, "complaint.created", c)
	}
	return c, nil
}

// UpdateStatus overwrites the status of the first complaint matching id and
// persists. No history is kept and any transition is allowed, including
// backward ones. Returns found=false for an unknown id. On persist failure
// the prior status is restored.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.complaints {
		if s.complaints[i].ID != id {
			continue
		}
		prev := s.complaints[i].Status
		s.complaints[i].Status = status
		if err := s.store.Save(ctx, store.KeyComplaints, s.complaints); err != nil {
			s.complaints[i].Status = prev
			return false, fmt.Errorf("save complaints: %w", err)
		}
		if s.publisher != nil {
			s.publisher.PublishComplaintEvent(ctx, "complaint.updated", s.complaints[i])
		}
		return true, nil
	}
	return false, nil
}

// All returns a snapshot of the collection in insertion order.
func (s *ComplaintService) All() []model.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.complaints)
}

// ByStatus returns the complaints matching status ("" or "all" = no filter).
func (s *ComplaintService) ByStatus(status string) []model.Complaint {
	return search.Complaints(s.All(), status)
}

// ByID returns the first complaint with the given id.
func (s *ComplaintService) ByID(id string) (model.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.complaints {
		if c.ID == id {
			return c, true
		}
	}
	return model.Complaint{}, false
}

// Counts recomputes the dashboard aggregates from the current collection.
func (s *ComplaintService) Counts() model.Counts {
	return stats.Count(s.All())
}

// SeedSampleData inserts the demo complaints, but only into an empty
// collection. Returns the number seeded.
func (s *ComplaintService) SeedSampleData(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.complaints) > 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	s.complaints = []model.Complaint{
		{
			ID:          "#12345",
			Subject:     "Water supply issue in Sector 7",
			Description: "No water supply for the past 3 days",
			Sector:      model.SectorWater,
			Status:      model.StatusPending,
			Date:        now,
			UserID:      "sample",
		},
		{
			ID:          "#12344",
			Subject:     "Road repair request near market",
			Description: "Large potholes making travel difficult",
			Sector:      model.SectorRoads,
			Status:      model.StatusResolved,
			Date:        now.Add(-24 * time.Hour),
			UserID:      "sample",
		},
		{
			ID:          "#12343",
			Subject:     "Electricity outage in Block B",
			Description: "Power cuts lasting more than 8 hours daily",
			Sector:      model.SectorElectricity,
			Status:      model.StatusInProgress,
			Date:        now.Add(-48 * time.Hour),
			UserID:      "sample",
		},
	}
	if err := s.store.Save(ctx, store.KeyComplaints, s.complaints); err != nil {
		s.complaints = nil
		return 0, fmt.Errorf("save complaints: %w", err)
	}
	return len(s.complaints), nil
}
