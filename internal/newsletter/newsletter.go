// Package newsletter records newsletter signups.
//
// The Service validates an address and hands it to a Store. Two stores
// exist: MemoryStore for development and tests, and BoltStore, which keeps
// subscribers in a bbolt file across restarts.
package newsletter

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

// Subscriber is one newsletter signup.
type Subscriber struct {
	Email        string
	SubscribedAt time.Time
}

// Store persists subscribers, keyed by normalized email.
type Store interface {
	// Add stores s. It reports false, without error, when the email is
	// already subscribed.
	Add(ctx context.Context, s Subscriber) (bool, error)

	// List returns every subscriber ordered by email.
	List(ctx context.Context) ([]Subscriber, error)

	Close() error
}

// Result is the outcome of one Subscribe call. The values double as
// metric labels.
type Result string

const (
	ResultSubscribed Result = "subscribed"
	ResultDuplicate  Result = "duplicate"
	ResultEmpty      Result = "empty"
	ResultInvalid    Result = "invalid"
	ResultError      Result = "error"
)

// OK reports whether the signup should be confirmed to the visitor.
// A duplicate is confirmed like a new signup.
func (r Result) OK() bool {
	return r == ResultSubscribed || r == ResultDuplicate
}

// Service validates and records signups.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a Service writing to store.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger.With("component", "newsletter"),
		now:    time.Now,
	}
}

// Subscribe records email.
//
// An empty (or blank) email is not an error: it returns ResultEmpty and
// records nothing. An address that fails validation returns ResultInvalid
// with an E140 error. Subscribing twice is idempotent.
func (s *Service) Subscribe(ctx context.Context, email string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return ResultEmpty, nil
	}
	if err := validateEmail(email); err != nil {
		return ResultInvalid, siteerrors.New("E140").WithDetail(email).Wrap(err)
	}

	added, err := s.store.Add(ctx, Subscriber{
		Email:        Normalize(email),
		SubscribedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("subscriber not saved", "error", err)
		return ResultError, siteerrors.FromError(err, "E142")
	}
	if !added {
		s.logger.Debug("already subscribed")
		return ResultDuplicate, nil
	}

	s.logger.Info("new subscriber")
	return ResultSubscribed, nil
}

// Subscribers lists the stored subscribers.
func (s *Service) Subscribers(ctx context.Context) ([]Subscriber, error) {
	return s.store.List(ctx)
}

// Normalize lowercases and trims an email so that case variants of one
// address are the same subscriber.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validateEmail(email string) error {
	validatorOnce.Do(func() {
		validate = validator.New()
	})
	return validate.Var(email, "required,email,max=254")
}

// Store kinds accepted by OpenStore.
const (
	StoreMemory = "memory"
	StoreBolt   = "bolt"
)

// OpenStore opens the store named by kind. boltPath is used only for
// StoreBolt.
func OpenStore(kind, boltPath string) (Store, error) {
	switch kind {
	case "", StoreMemory:
		return NewMemoryStore(), nil
	case StoreBolt:
		store, err := OpenBolt(boltPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, siteerrors.New("E141").WithDetailf("unknown store %q", kind)
	}
}
