package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/store"
)

// autosaveTimeout bounds a single debounced write.
const autosaveTimeout = 5 * time.Second

// PreferencesService reads and writes per-identity defaults. Autosave
// debounces bursts of edits into one write per identity.
//
// Writes for one identity are serialized by its owner lock, and a debounced
// write re-checks that it is still current once it holds that lock, so an
// explicit Save is never overwritten by an older autosave.
type PreferencesService struct {
	store  store.Store
	delay  time.Duration
	log    logger.Logger
	writes ownerLocks

	mu      sync.Mutex
	pending map[string]*pendingSave
	seq     uint64
}

type pendingSave struct {
	timer *time.Timer
	prefs model.Preferences
	seq   uint64
}

// NewPreferencesService creates a PreferencesService with the given autosave
// delay.
func NewPreferencesService(st store.Store, delay time.Duration, log logger.Logger) *PreferencesService {
	return &PreferencesService{
		store:   st,
		delay:   delay,
		log:     log,
		pending: make(map[string]*pendingSave),
		writes:  ownerLocks{locks: make(map[string]*ownerLock)},
	}
}

// Get returns the owner's saved preferences, or the defaults when none exist.
func (s *PreferencesService) Get(ctx context.Context, owner string) (model.Preferences, error) {
	prefs, err := s.store.GetPreferences(ctx, owner)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return model.DefaultPreferences(owner), nil
	}
	if err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}

// Save writes prefs now and drops any pending autosave for owner.
func (s *PreferencesService) Save(ctx context.Context, owner string, prefs model.Preferences) error {
	if err := validatePreferences(prefs); err != nil {
		return err
	}
	s.cancel(owner)

	unlock := s.writes.lock(owner)
	defer unlock()
	return s.store.SavePreferences(ctx, owner, prefs)
}

// SetDarkMode patches only the dark-mode flag, both in the store and in any
// pending autosave for owner.
func (s *PreferencesService) SetDarkMode(ctx context.Context, owner string, dark bool) (model.Preferences, error) {
	unlock := s.writes.lock(owner)
	defer unlock()

	s.mu.Lock()
	if p, ok := s.pending[owner]; ok {
		p.prefs.DarkMode = dark
	}
	s.mu.Unlock()

	prefs, err := s.Get(ctx, owner)
	if err != nil {
		return model.Preferences{}, err
	}
	prefs.DarkMode = dark
	if err := s.store.SavePreferences(ctx, owner, prefs); err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}

// Autosave schedules prefs to be written after the autosave delay. A later
// call for the same owner within the delay replaces it. Write errors are
// logged, not returned.
func (s *PreferencesService) Autosave(owner string, prefs model.Preferences) error {
	if err := validatePreferences(prefs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[owner]; ok {
		p.timer.Stop()
	}
	s.seq++
	seq := s.seq
	s.pending[owner] = &pendingSave{
		prefs: prefs,
		seq:   seq,
		timer: time.AfterFunc(s.delay, func() { s.fire(owner, seq) }),
	}
	return nil
}

// Flush writes every pending autosave immediately.
func (s *PreferencesService) Flush(ctx context.Context) error {
	s.mu.Lock()
	owners := make([]string, 0, len(s.pending))
	for owner, p := range s.pending {
		p.timer.Stop()
		owners = append(owners, owner)
	}
	s.mu.Unlock()

	var errs []error
	for _, owner := range owners {
		if err := s.write(ctx, owner, 0); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Pending reports how many identities have an unsaved autosave.
func (s *PreferencesService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *PreferencesService) fire(owner string, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), autosaveTimeout)
	defer cancel()

	if err := s.write(ctx, owner, seq); err != nil {
		s.log.Warn("autosave failed", logger.String("identity", owner), logger.Error(err))
	}
}

// write stores owner's pending autosave while holding the owner lock. A
// non-zero seq must still match the pending entry; otherwise the entry was
// superseded, cancelled or flushed and nothing is written.
func (s *PreferencesService) write(ctx context.Context, owner string, seq uint64) error {
	unlock := s.writes.lock(owner)
	defer unlock()

	s.mu.Lock()
	p, ok := s.pending[owner]
	if !ok || (seq != 0 && p.seq != seq) {
		s.mu.Unlock()
		return nil
	}
	delete(s.pending, owner)
	s.mu.Unlock()

	return s.store.SavePreferences(ctx, owner, p.prefs)
}

func (s *PreferencesService) cancel(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[owner]; ok {
		p.timer.Stop()
		delete(s.pending, owner)
	}
}

func validatePreferences(p model.Preferences) error {
	if err := ValidateUsername(p.UsernameDefaults); err != nil {
		return err
	}
	return ValidatePassword(p.PasswordDefaults)
}

// ownerLocks hands out one mutex per identity and forgets it once unused.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	sync.Mutex
	refs int
}

func (l *ownerLocks) lock(owner string) (unlock func()) {
	l.mu.Lock()
	ol, ok := l.locks[owner]
	if !ok {
		ol = &ownerLock{}
		l.locks[owner] = ol
	}
	ol.refs++
	l.mu.Unlock()

	ol.Lock()
	return func() {
		ol.Unlock()
		l.mu.Lock()
		ol.refs--
		if ol.refs == 0 {
			delete(l.locks, owner)
		}
		l.mu.Unlock()
	}
}
