// Package controller implements the generic remote collection controller:
// filter and page state, cache-first reads, validated submissions and cache
// invalidation after every successful mutation.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/coach-admin/internal/cache"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
	"github.com/heartmarshall/coach-admin/internal/validator"
)

var (
	// ErrSuperseded is returned by a list load whose result was discarded
	// because a newer load was issued.
	ErrSuperseded = errors.New("controller: superseded by a newer request")
	// ErrClosed is returned once the page owning the controller is gone.
	ErrClosed = errors.New("controller: closed")
	// ErrNoConfirmer is returned by SubmitDelete without a Confirmer.
	ErrNoConfirmer = errors.New("controller: delete requires confirmation")
)

// Remote is the CRUD surface of one REST collection.
type Remote[T any] interface {
	List(ctx context.Context, filter domain.EntityFilter) (domain.PagedResult[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id int64, payload any) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Cache is the part of *cache.Cache the controller uses.
type Cache interface {
	Get(key cache.Key) (cache.Entry, bool)
	SetIf(key cache.Key, value any, gen uint64) (cache.Entry, bool)
	Generation(entity domain.EntityType) uint64
	Invalidate(entities ...domain.EntityType) int
	InvalidatePrefix(entity domain.EntityType, prefixes ...string) int
}

// Config wires a controller to one entity type.
type Config[T any] struct {
	Entity domain.EntityType
	// Noun names one item in messages, e.g. "gym member".
	Noun string
	// Path scopes cache keys, e.g. "gyms" or "gyms/4/users".
	Path   string
	Schema *schema.Schema
	Remote Remote[T]
	Cache  Cache
	// Invalidates lists extra entity types dropped after a mutation.
	Invalidates []domain.EntityType
	// Scoped limits the entries of Entity dropped after a mutation to the
	// ones under Path, e.g. the roster of one gym.
	Scoped bool
	// Filter is the initial filter; page defaults to 1.
	Filter domain.EntityFilter
	Logger *slog.Logger
}

// Controller drives one page. It is safe for concurrent use.
type Controller[T any] struct {
	entity      domain.EntityType
	noun        string
	path        string
	schema      *schema.Schema
	remote      Remote[T]
	cache       Cache
	invalidates []domain.EntityType
	scoped      bool
	log         *slog.Logger

	life context.Context
	stop context.CancelFunc

	mu         sync.Mutex
	state      State
	filter     domain.EntityFilter
	page       domain.PagedResult[T]
	hasPage    bool
	err        error
	validation validator.Result
	gen        uint64
	submitting bool
	closed     bool
}

// New creates a controller in StateIdle. Nothing is fetched until the first
// Refresh, SetFilter or SetPage.
func New[T any](cfg Config[T]) *Controller[T] {
	noun := cfg.Noun
	if noun == "" {
		noun = strings.ReplaceAll(string(cfg.Entity), "_", " ")
	}
	path := cfg.Path
	if path == "" {
		path = string(cfg.Entity)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	invalidates := []domain.EntityType{cfg.Entity}
	for _, e := range cfg.Invalidates {
		if !slices.Contains(invalidates, e) {
			invalidates = append(invalidates, e)
		}
	}

	life, stop := context.WithCancel(context.Background())
	return &Controller[T]{
		entity:      cfg.Entity,
		noun:        noun,
		path:        path,
		schema:      cfg.Schema,
		remote:      cfg.Remote,
		cache:       cfg.Cache,
		invalidates: invalidates,
		scoped:      cfg.Scoped,
		log:         logger.With("controller", path),
		life:        life,
		stop:        stop,
		state:       StateIdle,
		filter:      cfg.Filter.Clone(),
		validation:  validator.Result{Valid: true, Errors: map[string]string{}},
	}
}

// Schema returns the form schema of the entity.
func (c *Controller[T]) Schema() *schema.Schema { return c.schema }

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	page := c.page
	page.Items = slices.Clone(c.page.Items)
	return Snapshot[T]{
		State:      c.state,
		Filter:     c.filter.Clone(),
		Page:       page,
		HasPage:    c.hasPage,
		Err:        c.err,
		Validation: c.validation,
	}
}

// SetFilter merges partial into the filter and loads the list. Empty values
// remove their field; changing any field other than "page" resets the page
// to 1.
func (c *Controller[T]) SetFilter(ctx context.Context, partial map[string]any) error {
	c.mu.Lock()
	merged, changed := c.filter.Merge(partial)
	c.filter = merged
	c.mu.Unlock()

	c.log.DebugContext(ctx, "set filter", slog.String("filter", merged.String()), slog.Bool("changed", changed))
	return c.load(ctx, false)
}

// SetPage moves to page n, clamped to [1, lastPage] of the current list.
// Other filter fields are kept.
func (c *Controller[T]) SetPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if c.hasPage {
		n = c.page.ClampPage(n)
	} else if n < 1 {
		n = 1
	}
	c.filter = c.filter.WithPage(n)
	c.mu.Unlock()

	return c.load(ctx, false)
}

// Refresh refetches the current list, bypassing the cache.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.load(ctx, true)
}

// Load returns one entity, from the cache when present.
func (c *Controller[T]) Load(ctx context.Context, id int64) (T, error) {
	var zero T
	if c.isClosed() {
		return zero, ErrClosed
	}

	key := cache.ItemKey(c.entity, c.path, id)
	if e, ok := c.cache.Get(key); ok {
		if v, ok := e.Value.(T); ok {
			return v, nil
		}
	}

	gen := c.cache.Generation(c.entity)
	ctx, cancel := c.bind(ctx)
	defer cancel()

	v, err := c.remote.Get(ctx, id)
	if err != nil {
		if c.isClosed() {
			return zero, ErrClosed
		}
		return zero, err
	}
	c.cache.SetIf(key, v, gen)
	return v, nil
}

// load fetches the list for the current filter. Only the newest load may
// update the page state; older responses return ErrSuperseded.
func (c *Controller[T]) load(ctx context.Context, force bool) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.gen++
	gen := c.gen
	filter := c.filter.Clone()
	key := cache.ListKey(c.entity, c.path, filter)

	if !force {
		if e, ok := c.cache.Get(key); ok {
			if page, ok := e.Value.(domain.PagedResult[T]); ok {
				c.applyPage(page)
				c.mu.Unlock()
				return nil
			}
		}
	}
	if !c.submitting {
		c.state = StateLoading
	}
	c.mu.Unlock()

	cacheGen := c.cache.Generation(c.entity)
	ctx, cancel := c.bind(ctx)
	defer cancel()

	page, err := c.remote.List(ctx, filter)
	if err == nil {
		page = page.Normalize()
		// Past the last page the backend answers with an empty page labelled
		// as the requested one. Fetch the last real page instead.
		if page.CurrentPage < filter.Page {
			c.log.DebugContext(ctx, "page out of range",
				slog.Int("requested", filter.Page), slog.Int("last", page.LastPage))
			filter = filter.WithPage(page.CurrentPage)
			key = cache.ListKey(c.entity, c.path, filter)
			page, err = c.remote.List(ctx, filter)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if gen != c.gen {
		c.log.DebugContext(ctx, "discard superseded list", slog.String("filter", filter.String()))
		return ErrSuperseded
	}
	if err != nil {
		c.state = StateErrored
		c.err = err
		c.log.WarnContext(ctx, "list failed",
			slog.String("filter", filter.String()),
			slog.String("kind", domain.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("list %s: %w", c.path, err)
	}

	page = page.Normalize()
	c.cache.SetIf(key, page, cacheGen)
	c.applyPage(page)
	return nil
}

// applyPage must be called with c.mu held.
func (c *Controller[T]) applyPage(page domain.PagedResult[T]) {
	c.page = page
	c.hasPage = true
	c.err = nil
	if !c.submitting {
		c.state = StateLoaded
	}
	if page.CurrentPage != c.filter.Page {
		c.filter = c.filter.WithPage(page.CurrentPage)
	}
}

// SubmitCreate validates draft and creates the entity.
func (c *Controller[T]) SubmitCreate(ctx context.Context, draft schema.Values) (Outcome[T], error) {
	return c.submit(ctx, draft, "create", func(ctx context.Context, payload any) (T, error) {
		return c.remote.Create(ctx, payload)
	})
}

// SubmitUpdate validates draft and updates entity id.
func (c *Controller[T]) SubmitUpdate(ctx context.Context, id int64, draft schema.Values) (Outcome[T], error) {
	return c.submit(ctx, draft, "update", func(ctx context.Context, payload any) (T, error) {
		return c.remote.Update(ctx, id, payload)
	})
}

// Submit validates draft against the controller schema and runs send with
// the coerced payload. It is the building block for mutations that are not
// plain create or update, such as duplicating a diet plan. verb names the
// action in messages ("duplicate" gives "Diet plan duplicated successfully").
func (c *Controller[T]) Submit(ctx context.Context, draft schema.Values, s *schema.Schema, verb string, send func(ctx context.Context, payload any) (T, error)) (Outcome[T], error) {
	return c.submitWith(ctx, s, draft, verb, send)
}

func (c *Controller[T]) submit(ctx context.Context, draft schema.Values, verb string, send func(context.Context, any) (T, error)) (Outcome[T], error) {
	return c.submitWith(ctx, c.schema, draft, verb, send)
}

func (c *Controller[T]) submitWith(ctx context.Context, s *schema.Schema, draft schema.Values, verb string, send func(context.Context, any) (T, error)) (Outcome[T], error) {
	var payload any
	var res validator.Result
	if s != nil {
		res = validator.Validate(s, draft)
		if !res.Valid {
			c.mu.Lock()
			c.validation = res
			c.mu.Unlock()
			return Outcome[T]{
				Kind:       OutcomeInvalid,
				Message:    "Please fix the highlighted fields",
				Validation: res,
				Err:        res.Err(),
			}, nil
		}
		payload = schema.Coerce(s, draft)
	} else {
		res = validator.Result{Valid: true, Errors: map[string]string{}}
		payload = draft.Clone()
	}

	if err := c.begin(); err != nil {
		return Outcome[T]{}, err
	}

	entity, err := send(ctx, payload)
	if err != nil {
		return c.fail(ctx, verb, err), nil
	}

	c.succeed(ctx, verb)
	return Outcome[T]{
		Kind:       OutcomeSuccess,
		Message:    successMessage(c.noun, verb),
		Entity:     entity,
		Validation: res,
	}, nil
}

// SubmitDelete asks confirmer for approval and deletes entity id.
func (c *Controller[T]) SubmitDelete(ctx context.Context, id int64, confirmer Confirmer) (Outcome[T], error) {
	if confirmer == nil {
		return Outcome[T]{}, ErrNoConfirmer
	}
	if err := c.ready(); err != nil {
		return Outcome[T]{}, err
	}

	prompt := fmt.Sprintf("Delete this %s? This action cannot be undone.", c.noun)
	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		return Outcome[T]{}, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return Outcome[T]{Kind: OutcomeCancelled, Message: "Delete cancelled"}, nil
	}

	if err := c.begin(); err != nil {
		return Outcome[T]{}, err
	}
	if err := c.remote.Delete(ctx, id); err != nil {
		return c.fail(ctx, "delete", err), nil
	}

	c.succeed(ctx, "delete")
	return Outcome[T]{
		Kind:       OutcomeSuccess,
		Message:    successMessage(c.noun, "delete"),
		Validation: validator.Result{Valid: true, Errors: map[string]string{}},
	}, nil
}

func (c *Controller[T]) ready() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.submitting {
		return domain.ErrBusy
	}
	return nil
}

// begin enters StateSubmitting. Loads still in flight are superseded so
// they cannot publish a pre-mutation list.
func (c *Controller[T]) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.submitting {
		return domain.ErrBusy
	}
	c.submitting = true
	c.state = StateSubmitting
	c.gen++
	return nil
}

func (c *Controller[T]) fail(ctx context.Context, verb string, err error) Outcome[T] {
	c.mu.Lock()
	c.submitting = false
	if !c.closed {
		c.state = c.settledState()
	}
	c.mu.Unlock()

	c.log.WarnContext(ctx, verb+" failed",
		slog.String("kind", domain.KindOf(err).String()),
		slog.String("error", err.Error()),
	)

	out := Outcome[T]{
		Kind:    OutcomeFailure,
		Message: domain.UserMessage(err, fmt.Sprintf("Failed to %s %s", verb, c.noun)),
		Err:     err,
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		out.Validation = validator.FromError(verr)
	}
	return out
}

func (c *Controller[T]) invalidate() int {
	if !c.scoped {
		return c.cache.Invalidate(c.invalidates...)
	}
	n := c.cache.InvalidatePrefix(c.entity, cache.PathPrefixes(c.path)...)
	if extra := c.invalidates[1:]; len(extra) > 0 {
		n += c.cache.Invalidate(extra...)
	}
	return n
}

// succeed invalidates the cache before anything else observes the
// mutation as done, then refetches a list that was on screen.
func (c *Controller[T]) succeed(ctx context.Context, verb string) {
	dropped := c.invalidate()

	c.mu.Lock()
	c.submitting = false
	c.validation = validator.Result{Valid: true, Errors: map[string]string{}}
	refetch := c.hasPage && !c.closed
	if !c.closed {
		c.state = c.settledState()
	}
	c.mu.Unlock()

	c.log.InfoContext(ctx, verb+" succeeded", slog.Int("invalidated", dropped))

	if refetch {
		if err := c.load(ctx, true); err != nil && !errors.Is(err, ErrSuperseded) && !errors.Is(err, ErrClosed) {
			c.log.WarnContext(ctx, "refetch after "+verb, slog.String("error", err.Error()))
		}
	}
}

// settledState must be called with c.mu held.
func (c *Controller[T]) settledState() State {
	switch {
	case c.err != nil:
		return StateErrored
	case c.hasPage:
		return StateLoaded
	default:
		return StateIdle
	}
}

// Close abandons in-flight reads. No state changes are published after
// Close returns; a mutation already sent still completes and still
// invalidates the cache.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.gen++
	c.mu.Unlock()
	c.stop()
}

func (c *Controller[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// bind derives a context that is also cancelled by Close.
func (c *Controller[T]) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.life, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func successMessage(noun, verb string) string {
	past := verb + "d"
	if !strings.HasSuffix(verb, "e") {
		past = verb + "ed"
	}
	return fmt.Sprintf("%s %s successfully", capitalize(noun), past)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
