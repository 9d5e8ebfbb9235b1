package forms

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/validator"
)

const (
	// PrimaryPasswordField is the name of the password input whose length is enforced.
	PrimaryPasswordField = "password1"

	// SubmittingLabel replaces the submit button text while the form is sent.
	SubmittingLabel = "Processing..."
)

// Field describes one input of a form.
type Field struct {
	Name      string
	InputType string // HTML type attribute: text, email, password, textarea, ...
	Required  bool
	MinLength int
}

// Rule converts the field to its validation rule. Only a password input named
// PrimaryPasswordField is a primary password.
func (f Field) Rule() validator.FieldRule {
	kind := validator.KindFromInputType(f.InputType)
	return validator.FieldRule{
		Name:      f.Name,
		Kind:      kind,
		Required:  f.Required,
		MinLength: f.MinLength,
		Primary:   kind == validator.KindPassword && f.Name == PrimaryPasswordField,
	}
}

// Option configures a Form.
type Option func(*Form)

func WithSurface(s ErrorSurface) Option {
	return func(f *Form) {
		if s != nil {
			f.surface = s
		}
	}
}

func WithButton(b Button) Option {
	return func(f *Form) {
		if b != nil {
			f.button = b
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// Form validates its fields on blur, clears errors on input and locks
// itself on the first submit. All methods are safe for concurrent use.
type Form struct {
	name   string
	fields map[string]Field
	order  []string

	surface ErrorSurface
	button  Button
	logger  *slog.Logger

	mu         sync.Mutex
	errors     map[string]string
	submitting bool
}

// New builds a form named name. Without WithSurface and WithButton the form
// keeps state in a private MemorySurface.
func New(name string, fields []Field, opts ...Option) (*Form, error) {
	f := &Form{
		name:   name,
		fields: make(map[string]Field, len(fields)),
		order:  make([]string, 0, len(fields)),
		logger: slog.Default(),
		errors: make(map[string]string),
	}

	for _, fld := range fields {
		if fld.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, ok := f.fields[fld.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, fld.Name)
		}
		f.fields[fld.Name] = fld
		f.order = append(f.order, fld.Name)
	}

	mem := NewMemorySurface()
	f.surface, f.button = mem, mem
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Form) Name() string { return f.name }

// Blur validates value for the named field. Any previous error is cleared
// first; a failing value shows the new message.
func (f *Form) Blur(ctx context.Context, name, value string) (validator.Result, error) {
	fld, ok := f.fields[name]
	if !ok {
		return validator.Result{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	res := validator.Validate(fld.Rule(), value)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.clearLocked(name)
	if !res.Valid {
		f.errors[name] = res.Message
		f.surface.ShowError(name, res.Message)
		f.logger.DebugContext(ctx, "field rejected",
			logger.Component("forms"),
			logger.Field(name),
			slog.String("message", res.Message),
		)
	}
	return res, nil
}

// Input clears the error of the named field while the user edits it.
func (f *Form) Input(_ context.Context, name string) error {
	if _, ok := f.fields[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearLocked(name)
	return nil
}

// Submit disables the submit button and shows SubmittingLabel. It reports
// false when the form was already submitting.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return false
	}
	f.submitting = true
	f.button.Disable(SubmittingLabel)
	f.logger.DebugContext(ctx, "form submitted", logger.Component("forms"), slog.String("form", f.name))
	return true
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Errors returns the currently shown messages keyed by field name.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

// ValidateAll blurs every field in declaration order with the matching value
// from values (missing values are empty) and returns the failures.
func (f *Form) ValidateAll(ctx context.Context, values map[string]string) map[string]string {
	failed := make(map[string]string)
	for _, name := range f.order {
		res, _ := f.Blur(ctx, name, values[name])
		if !res.Valid {
			failed[name] = res.Message
		}
	}
	return failed
}

// Bind feeds blur, input and submit events from bus into the form. Events
// for other fields are ignored, as are submit events aimed at another form.
// The returned function detaches the form.
func (f *Form) Bind(ctx context.Context, bus events.Bus) (stop func()) {
	return events.Attach(ctx, bus, f.handle, events.Blur, events.Input, events.Submit)
}

func (f *Form) handle(ctx context.Context, e events.Event) {
	switch e.Type {
	case events.Submit:
		if e.Target == "" || e.Target == f.name {
			f.Submit(ctx)
		}
	case events.Blur:
		if _, ok := f.fields[e.Target]; ok {
			_, _ = f.Blur(ctx, e.Target, e.Value)
		}
	case events.Input:
		if _, ok := f.fields[e.Target]; ok {
			_ = f.Input(ctx, e.Target)
		}
	}
}

func (f *Form) clearLocked(name string) {
	delete(f.errors, name)
	f.surface.ClearError(name)
}
