package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/navikt/lecturerooms/internal/repository"
	"github.com/navikt/lecturerooms/internal/utils"
)

// UpdateCallback is called after every operation with the notice it produced
type UpdateCallback func(notice models.Notice)

// Result is the outcome of an operation as seen by handlers.
// Err is nil on success, otherwise the rejection reason.
type Result struct {
	Notice models.Notice
	Err    error
}

// OK returns true if the operation was applied
func (r Result) OK() bool {
	return r.Err == nil
}

// OccupancyService owns the application state. It applies the occupancy
// operations one at a time, persists the result and keeps the latest notice.
type OccupancyService struct {
	repo     repository.Repository
	validate *validator.Validate

	now       func() time.Time
	newID     func() string
	noticeTTL time.Duration

	mu              sync.Mutex
	state           occupancy.State
	notice          *models.Notice
	updateCallbacks []UpdateCallback
}

// Option configures an OccupancyService
type Option func(*OccupancyService)

// WithClock sets the time source used for check-in dates and notices
func WithClock(now func() time.Time) Option {
	return func(s *OccupancyService) {
		s.now = now
	}
}

// WithIDGenerator sets the generator for lecturer identifiers
func WithIDGenerator(newID func() string) Option {
	return func(s *OccupancyService) {
		s.newID = newID
	}
}

// WithNoticeTTL sets how long a notice stays visible; zero keeps it until dismissed
func WithNoticeTTL(ttl time.Duration) Option {
	return func(s *OccupancyService) {
		s.noticeTTL = ttl
	}
}

// NewOccupancyService loads the stored state and returns a service managing it
func NewOccupancyService(ctx context.Context, repo repository.Repository, opts ...Option) (*OccupancyService, error) {
	s := &OccupancyService{
		repo:            repo,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewString,
		noticeTTL:       5 * time.Second,
		updateCallbacks: make([]UpdateCallback, 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	s.state = state

	log.Printf("Loaded %d rooms and %d checked-in lecturers", len(state.Rooms), len(state.Lecturers))
	return s, nil
}

// RegisterUpdateCallback registers a callback function to be called when state changes
func (s *OccupancyService) RegisterUpdateCallback(callback UpdateCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// State returns a snapshot of the current state
func (s *OccupancyService) State() occupancy.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Notice returns the latest notice unless it was dismissed or has expired
func (s *OccupancyService) Notice() (models.Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notice == nil {
		return models.Notice{}, false
	}
	if s.notice.Expired(s.now(), s.noticeTTL) {
		s.notice = nil
		return models.Notice{}, false
	}
	return *s.notice, true
}

// DismissNotice clears the latest notice
func (s *OccupancyService) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

// Ping checks that the state store is reachable
func (s *OccupancyService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// CheckIn assigns a lecturer to a free room
func (s *OccupancyService) CheckIn(ctx context.Context, form models.CheckInForm) Result {
	form.Name = strings.TrimSpace(form.Name)
	form.RoomNumber = strings.TrimSpace(form.RoomNumber)
	form.Email = strings.TrimSpace(form.Email)
	if res, ok := s.checkInput(form); !ok {
		return res
	}

	id := s.newID()
	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.CheckIn(st, form, id, s.now())
	})
	if res.OK() {
		log.Printf("Checked in lecturer %s (%s) to room %s",
			utils.SanitizeLogString(form.Name), utils.MaskEmail(form.Email), utils.SanitizeLogString(form.RoomNumber))
	} else {
		log.Printf("Check-in of %s rejected: %v", utils.SanitizeLogString(form.Name), res.Err)
	}
	return res
}

// CheckOut removes the lecturer with the given name, ignoring case
func (s *OccupancyService) CheckOut(ctx context.Context, form models.CheckOutForm) Result {
	form.Name = strings.TrimSpace(form.Name)
	if res, ok := s.checkInput(form); !ok {
		return res
	}

	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.CheckOut(st, form.Name)
	})
	if res.OK() {
		log.Printf("Checked out lecturer %s", utils.SanitizeLogString(form.Name))
	}
	return res
}

// CheckOutByID removes the lecturer with the given identifier
func (s *OccupancyService) CheckOutByID(ctx context.Context, id string) Result {
	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.CheckOutByID(st, id)
	})
	if res.OK() {
		log.Printf("Checked out lecturer %s", utils.SanitizeLogString(id))
	}
	return res
}

// EditLecturer replaces a lecturer's details, moving rooms if the room number changes
func (s *OccupancyService) EditLecturer(ctx context.Context, id string, update models.LecturerUpdate) Result {
	update.Name = strings.TrimSpace(update.Name)
	update.RoomNumber = strings.TrimSpace(update.RoomNumber)
	update.Email = strings.TrimSpace(update.Email)
	if res, ok := s.checkInput(update); !ok {
		return res
	}

	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.EditLecturer(st, id, update)
	})
	if !res.OK() {
		log.Printf("Edit of lecturer %s rejected: %v", utils.SanitizeLogString(id), res.Err)
	}
	return res
}

// apply runs op against the current state. A successful result is persisted and
// becomes the current state even when saving fails; the notice then turns into
// a warning. Callbacks run after the lock is released.
func (s *OccupancyService) apply(ctx context.Context, op func(occupancy.State) (occupancy.State, occupancy.Outcome)) Result {
	s.mu.Lock()

	next, out := op(s.state)
	notice := out.Notice(s.now())

	if out.OK() {
		if err := s.repo.Save(ctx, next); err != nil {
			log.Printf("Error saving state: %v", err)
			notice.Kind = models.NoticeWarning
			notice.Message += "; changes could not be saved"
		}
		s.state = next
	}
	s.notice = &notice
	callbacks := append([]UpdateCallback(nil), s.updateCallbacks...)

	s.mu.Unlock()

	for _, callback := range callbacks {
		callback(notice)
	}

	return Result{Notice: notice, Err: out.Err}
}

// reject records an error notice for input that never reached the occupancy rules
func (s *OccupancyService) reject(err error) Result {
	s.mu.Lock()
	notice := models.Notice{Message: err.Error(), Kind: models.NoticeError, CreatedAt: s.now()}
	s.notice = &notice
	callbacks := append([]UpdateCallback(nil), s.updateCallbacks...)
	s.mu.Unlock()

	for _, callback := range callbacks {
		callback(notice)
	}
	return Result{Notice: notice, Err: err}
}
