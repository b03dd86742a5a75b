package entity

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
)

// Command names reported to the Recorder.
const (
	CommandCreate = "create"
	CommandUpdate = "update"
	CommandDelete = "delete"
)

// Command outcomes reported to the Recorder.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_failed"
	OutcomeNotFound   = "not_found"
)

// Recorder receives one observation per executed command.
type Recorder interface {
	RecordCommand(entity, command, outcome string)
}

// Result is the outcome of a successful command, or the notification of a rejected one.
type Result[T any] struct {
	Command      string              `json:"command"`
	Record       T                   `json:"record"`
	Notification models.Notification `json:"notification"`
}

type settings struct {
	validate *validator.Validate
	logger   *zap.Logger
	recorder Recorder
	newID    func() string
	now      func() time.Time
}

// Option customizes a Controller.
type Option func(*settings)

// WithValidator shares a validator instance.
func WithValidator(v *validator.Validate) Option {
	return func(s *settings) { s.validate = v }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithRecorder sets the command metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *settings) { s.recorder = r }
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *settings) { s.newID = fn }
}

// WithClock overrides the clock used for createdAt.
func WithClock(fn func() time.Time) Option {
	return func(s *settings) { s.now = fn }
}

// Controller turns one entity Store into a searchable, editable view model. All methods are
// serialized: a command fully applies or fully rejects before the next one starts.
type Controller[T any] struct {
	mu      sync.Mutex
	schema  Schema[T]
	store   *Store[T]
	seed    []T
	session EditSession
	cfg     settings
}

// New builds a controller whose store starts with a copy of seed.
func New[T any](schema Schema[T], seed []T, opts ...Option) *Controller[T] {
	cfg := settings{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.validate == nil {
		cfg.validate = validator.New()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	seedCopy := make([]T, len(seed))
	copy(seedCopy, seed)

	return &Controller[T]{
		schema: schema,
		store:  NewStore(schema.ID, seedCopy),
		seed:   seedCopy,
		cfg:    cfg,
	}
}

// Schema returns the schema the controller was built with.
func (c *Controller[T]) Schema() Schema[T] {
	return c.schema
}

// List returns the query view for search over the live collection.
func (c *Controller[T]) List(search string) []T {
	records := c.store.List()
	for i := range records {
		records[i] = c.schema.present(records[i])
	}
	return Filter(records, search, c.schema.Searchable)
}

// Count returns the size of the collection.
func (c *Controller[T]) Count() int {
	return c.store.Len()
}

// Get returns the record stored under id.
func (c *Controller[T]) Get(id string) (T, error) {
	record, ok := c.store.Get(id)
	if !ok {
		return record, c.notFound()
	}
	return c.schema.present(record), nil
}

// Session returns the current edit session.
func (c *Controller[T]) Session() SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.snapshot()
}

// OpenCreate starts a create session with the blank draft, discarding any open draft.
func (c *Controller[T]) OpenCreate() SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.openCreate(c.schema.BlankDraft())
	return c.session.snapshot()
}

// OpenEdit starts an edit session populated from the record stored under id. An unknown id
// leaves the current session untouched.
func (c *Controller[T]) OpenEdit(id string) (SessionSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record, ok := c.store.Get(id)
	if !ok {
		return c.session.snapshot(), c.notFound()
	}
	c.session.openEdit(id, c.schema.ToDraft(record))
	return c.session.snapshot(), nil
}

// UpdateField changes one draft value. Only the draft is touched.
func (c *Controller[T]) UpdateField(key, value string) (SessionSnapshot, error) {
	return c.UpdateFields(map[string]string{key: value})
}

// UpdateFields changes several draft values at once. Every key is checked before any value
// is written, so an unknown key leaves the draft as it was.
func (c *Controller[T]) UpdateFields(changes map[string]string) (SessionSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.session.Open() {
		return c.session.snapshot(), appErrors.Clone(appErrors.ErrConflict, "no edit session is open")
	}
	unknown := make(map[string]string)
	for key := range changes {
		if _, ok := c.schema.field(key); !ok {
			unknown[key] = "unknown field"
		}
	}
	if len(unknown) > 0 {
		return c.session.snapshot(), appErrors.Validation(
			fmt.Sprintf("unknown %s field", strings.ToLower(c.schema.Singular)),
			unknown,
		)
	}
	for key, value := range changes {
		c.session.set(key, value)
	}
	return c.session.snapshot(), nil
}

// Cancel closes the edit session and discards its draft.
func (c *Controller[T]) Cancel() SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.close()
	return c.session.snapshot()
}

// Submit validates the draft and applies it. On validation failure the session stays open
// with field errors and the returned result carries the rejection notification.
func (c *Controller[T]) Submit() (Result[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result Result[T]
	if !c.session.Open() {
		return result, appErrors.Clone(appErrors.ErrConflict, "no edit session is open")
	}

	command := CommandCreate
	if c.session.mode == ModeEditing {
		command = CommandUpdate
	}
	result.Command = command

	draft := c.session.draft.Trimmed()
	if fields := c.validateDraft(draft); len(fields) > 0 {
		c.session.fail(fields)
		verr := appErrors.Validation(fmt.Sprintf("invalid %s draft", strings.ToLower(c.schema.Singular)), fields)
		result.Notification = models.Destructive("Error", "Please fill in all fields: "+c.fieldLabels(verr.FieldNames()))
		c.record(command, OutcomeValidation)
		c.cfg.logger.Debug("draft rejected",
			zap.String("entity", c.schema.Plural),
			zap.String("command", command),
			zap.Strings("fields", verr.FieldNames()),
		)
		return result, verr
	}

	if command == CommandCreate {
		return c.create(draft)
	}
	return c.update(c.session.targetID, c.session.draft)
}

// Delete removes the record stored under id. An unknown id leaves the store unchanged.
func (c *Controller[T]) Delete(id string) (Result[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := Result[T]{Command: CommandDelete}
	removed, ok := c.store.Remove(id)
	if !ok {
		c.record(CommandDelete, OutcomeNotFound)
		return result, c.notFound()
	}

	label := c.schema.Label(removed)
	result.Record = removed
	result.Notification = models.Destructive(c.schema.Singular+" Deleted", label+" has been removed.")
	c.record(CommandDelete, OutcomeSuccess)
	c.cfg.logger.Info("record deleted", zap.String("entity", c.schema.Plural), zap.String("id", id))
	return result, nil
}

// Reset restores the seed dataset and closes the edit session.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Reset(c.seed)
	c.session.close()
}

func (c *Controller[T]) create(draft Draft) (Result[T], error) {
	id := c.cfg.newID()
	for {
		if _, taken := c.store.Get(id); !taken {
			break
		}
		id = c.cfg.newID()
	}

	record := c.schema.Build(id, draft, models.NewDate(c.cfg.now()))
	c.store.Add(record)
	c.session.close()

	label := c.schema.Label(record)
	c.record(CommandCreate, OutcomeSuccess)
	c.cfg.logger.Info("record created", zap.String("entity", c.schema.Plural), zap.String("id", id))
	return Result[T]{
		Command:      CommandCreate,
		Record:       c.schema.present(record),
		Notification: models.Success(c.schema.Singular+" Created", label+" has been added successfully."),
	}, nil
}

// update merges the edited draft into the stored record. Values the user left alone keep
// their stored form; only edited values are trimmed.
func (c *Controller[T]) update(id string, draft Draft) (Result[T], error) {
	current, ok := c.store.Get(id)
	if !ok {
		c.session.close()
		c.record(CommandUpdate, OutcomeNotFound)
		return Result[T]{Command: CommandUpdate}, c.notFound()
	}

	merged := c.schema.Merge(current, draft.TrimmedChanges(c.schema.ToDraft(current)))
	c.store.Replace(id, merged)
	c.session.close()

	label := c.schema.Label(merged)
	c.record(CommandUpdate, OutcomeSuccess)
	c.cfg.logger.Info("record updated", zap.String("entity", c.schema.Plural), zap.String("id", id))
	return Result[T]{
		Command:      CommandUpdate,
		Record:       c.schema.present(merged),
		Notification: models.Success(c.schema.Singular+" Updated", label+" has been updated successfully."),
	}, nil
}

func (c *Controller[T]) validateDraft(draft Draft) map[string]string {
	fields := make(map[string]string)
	for _, f := range c.schema.Fields {
		if f.Rules == "" {
			continue
		}
		if err := c.cfg.validate.Var(draft[f.Key], f.Rules); err != nil {
			fields[f.Key] = fieldMessage(f, err)
		}
	}
	return fields
}

func (c *Controller[T]) fieldLabels(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		if f, ok := c.schema.field(key); ok && f.Label != "" {
			labels = append(labels, f.Label)
			continue
		}
		labels = append(labels, key)
	}
	return strings.Join(labels, ", ")
}

func (c *Controller[T]) notFound() *appErrors.Error {
	return appErrors.Clone(appErrors.ErrNotFound, strings.ToLower(c.schema.Singular)+" not found")
}

func (c *Controller[T]) record(command, outcome string) {
	if c.cfg.recorder != nil {
		c.cfg.recorder.RecordCommand(c.schema.Plural, command, outcome)
	}
}

func fieldMessage(f Field, err error) string {
	label := f.Label
	if label == "" {
		label = f.Key
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return label + " is required"
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(verrs[0].Param(), " ", ", "))
		case "email":
			return "Invalid email address"
		}
	}
	return label + " is invalid"
}
