package validation

import "context"

// Pipeline runs every validator bound to a request type.
type Pipeline[T any] struct {
	validators []Validator[T]
}

// NewPipeline binds validators in the order their fields are declared.
func NewPipeline[T any](validators ...Validator[T]) *Pipeline[T] {
	return &Pipeline[T]{validators: validators}
}

// Run evaluates all validators and returns every violation found.
// It stops only when a lookup fails, since the result would be incomplete.
func (p *Pipeline[T]) Run(ctx context.Context, req T) ([]Violation, error) {
	var violations []Violation
	for _, v := range p.validators {
		violation, err := v.Validate(ctx, req)
		if err != nil {
			return nil, err
		}
		if violation != nil {
			violations = append(violations, *violation)
		}
	}
	return violations, nil
}
