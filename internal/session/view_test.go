package session

import (
	"sync"
	"testing"
	"time"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/catalog"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/filter"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

func jobIDs(jobs []models.Job) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func sameIDs(t *testing.T, got []models.Job, want ...int) {
	t.Helper()
	ids := jobIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("Expected %v, got %v", want, ids)
	}
	for i := range ids {
		if ids[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, ids)
		}
	}
}

func TestNewViewShowsFullSeed(t *testing.T) {
	snap := NewView(catalog.Seed()).Snapshot()
	sameIDs(t, snap.Jobs, 1, 2, 3, 4)
	if snap.Criteria != filter.DefaultCriteria() {
		t.Errorf("Expected default criteria, got %+v", snap.Criteria)
	}
}

func TestSearchRecomputesFromSeed(t *testing.T) {
	v := NewView(catalog.Seed())
	sameIDs(t, v.Search("kafka").Jobs, 1)
	// a wider query must not be limited by the previous result
	sameIDs(t, v.Search("spring").Jobs, 1, 2, 4)
	sameIDs(t, v.Search("").Jobs, 1, 2, 3, 4)
}

func TestSetExperienceAndSalary(t *testing.T) {
	v := NewView(catalog.Seed())
	sameIDs(t, v.SetExperience(filter.ExperienceJunior).Jobs, 4)

	snap := v.SetMinSalary(273)
	if snap.Criteria.MinSalaryThousands != 250 {
		t.Errorf("Expected salary snapped to 250, got %d", snap.Criteria.MinSalaryThousands)
	}
	sameIDs(t, snap.Jobs, 4)

	sameIDs(t, v.SetExperience(filter.ExperienceAll).Jobs, 1, 2, 3, 4)
}

func TestEnableLocationSortsCurrentResults(t *testing.T) {
	v := NewView(catalog.Seed())
	v.Search("spring")
	snap := v.EnableLocation()
	if !snap.Criteria.LocationEnabled {
		t.Error("Expected location to be enabled")
	}
	sameIDs(t, snap.Jobs, 1, 4, 2)
}

func TestRecomputeAfterLocationDropsDistanceOrder(t *testing.T) {
	v := NewView(catalog.Seed())
	sameIDs(t, v.EnableLocation().Jobs, 1, 4, 2, 3)

	snap := v.Search("java")
	if !snap.Criteria.LocationEnabled {
		t.Error("Location flag should survive a new search")
	}
	sameIDs(t, snap.Jobs, 1, 2, 3, 4)
}

func TestToggleNotificationsLeavesResults(t *testing.T) {
	v := NewView(catalog.Seed())
	v.Search("senior")
	snap := v.ToggleNotifications()
	if !snap.Criteria.NotificationsEnabled {
		t.Error("Expected notifications on")
	}
	sameIDs(t, snap.Jobs, 1)
	if v.ToggleNotifications().Criteria.NotificationsEnabled {
		t.Error("Expected notifications off after second toggle")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	v := NewView(catalog.Seed())
	snap := v.Snapshot()
	snap.Jobs[0] = models.Job{ID: 99}
	sameIDs(t, v.Snapshot().Jobs, 1, 2, 3, 4)
}

func TestStoreGet(t *testing.T) {
	s := NewStore(catalog.Seed(), time.Hour)
	id, v := s.Get("")
	if id == "" || v == nil {
		t.Fatal("Expected a new session")
	}
	again, v2 := s.Get(id)
	if again != id || v2 != v {
		t.Error("Expected the same view for a known id")
	}
	other, v3 := s.Get("unknown")
	if other == "unknown" || v3 == v {
		t.Error("Unknown id should start a new session")
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 sessions, got %d", s.Len())
	}
}

func TestViewConcurrentUse(t *testing.T) {
	v := NewView(catalog.Seed())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v.SetMinSalary(i * 50)
			v.EnableLocation()
			v.ToggleNotifications()
			v.Search("java")
		}(i)
	}
	wg.Wait()
	if got := len(v.Snapshot().Jobs); got != 4 {
		t.Errorf("Expected 4 jobs, got %d", got)
	}
}

func TestToggleReturnsTheStateItProduced(t *testing.T) {
	v := NewView(catalog.Seed())
	const n = 100
	states := make(chan bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			states <- v.ToggleNotifications().Criteria.NotificationsEnabled
		}()
	}
	wg.Wait()
	close(states)

	on := 0
	for s := range states {
		if s {
			on++
		}
	}
	if on != n/2 {
		t.Errorf("Expected %d toggles to report on, got %d", n/2, on)
	}
}

func newTestStore(ttl time.Duration) (*Store, *time.Time) {
	s := NewStore(catalog.Seed(), ttl)
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestStoreEvictsIdleViews(t *testing.T) {
	s, clock := newTestStore(time.Minute)

	idle, _ := s.Get("")
	active, activeView := s.Get("")
	for i := 0; i < 3; i++ {
		*clock = clock.Add(40 * time.Second)
		if id, v := s.Get(active); id != active || v != activeView {
			t.Fatalf("Active session should survive, got new id %q", id)
		}
	}

	if s.Len() != 1 {
		t.Errorf("Expected the idle session to be evicted, got %d sessions", s.Len())
	}
	if id, _ := s.Get(idle); id == idle {
		t.Error("Idle session id should not be reused")
	}
}

func TestStoreExpiredIDStartsFreshView(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	id, v := s.Get("")
	v.Search("kafka")

	*clock = clock.Add(2 * time.Minute)
	newID, fresh := s.Get(id)
	if newID == id || fresh == v {
		t.Fatal("Expected a new session after expiry")
	}
	sameIDs(t, fresh.Snapshot().Jobs, 1, 2, 3, 4)
	if s.Len() != 1 {
		t.Errorf("Expected 1 session, got %d", s.Len())
	}
}

func TestStoreCookielessRequestsStayBounded(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	for i := 0; i < 50; i++ {
		s.Get("")
		*clock = clock.Add(10 * time.Second)
	}
	if n := s.Len(); n > 13 {
		t.Errorf("Expected idle cookieless sessions to be swept, got %d", n)
	}
}

func TestNewStoreDefaultTTL(t *testing.T) {
	if s := NewStore(nil, 0); s.ttl != DefaultTTL {
		t.Errorf("Expected default ttl %v, got %v", DefaultTTL, s.ttl)
	}
}
