package userform

import (
	"context"
	"fmt"
)

// Submitter is the outbound seam toward the HTTP client. Endpoint routing,
// authorization headers and retries are its problem, not ours.
type Submitter interface {
	CreateUser(ctx context.Context, user APIUser) error
	UpdateUser(ctx context.Context, id int64, user APIUser) error
}

// Pipeline sequences validate → convert → submit for a single attempt.
type Pipeline struct {
	converter *Converter
}

// NewPipeline wires a pipeline around the given converter, falling back to
// the default converter when nil.
func NewPipeline(converter *Converter) *Pipeline {
	if converter == nil {
		converter = NewConverter()
	}
	return &Pipeline{converter: converter}
}

// Process validates the record and, when clean, converts it to the API shape.
// A non-nil error map means the attempt stops before conversion.
func (p *Pipeline) Process(form FormUser, isNew bool) (APIUser, map[string]string) {
	if errs := Validate(form); errs != nil {
		return APIUser{}, errs
	}
	return p.converter.ToAPI(form, isNew), nil
}

// Submit runs the full attempt. Validation failures come back as the error
// map with a nil error; transport failures fail the attempt without being
// fatal to anything beyond it.
func (p *Pipeline) Submit(ctx context.Context, submitter Submitter, id int64, form FormUser, isNew bool) (map[string]string, error) {
	if submitter == nil {
		return nil, fmt.Errorf("userform: submitter is required")
	}

	user, errs := p.Process(form, isNew)
	if errs != nil {
		return errs, nil
	}

	if isNew {
		if err := submitter.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("userform: create user: %w", err)
		}
		return nil, nil
	}
	if err := submitter.UpdateUser(ctx, id, user); err != nil {
		return nil, fmt.Errorf("userform: update user: %w", err)
	}
	return nil, nil
}
