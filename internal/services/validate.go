package services

import (
	"context"
	"fmt"

	"github.com/danyllosoareszup/loja-virtual-testes/internal/validation"
)

var structValidator = validation.NewStructValidator()

// check reports structural and cross-reference violations of req as one batch.
func check[T any](ctx context.Context, pipeline *validation.Pipeline[T], req T) error {
	violations := validation.Structural(structValidator, req)
	cross, err := pipeline.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to validate request: %w", err)
	}
	return validation.NewErrors(append(violations, cross...)...)
}
