package workflow

import (
	"context"

	"go.uber.org/zap"
)

// Operation coordinates a single workflow step.
type Operation interface {
	Name() string
	Execute(executionContext context.Context, environment *Environment) error
}

// Environment exposes shared dependencies and runtime modifiers to operations.
type Environment struct {
	Logger *zap.Logger
	DryRun bool
}

// OperationFunc adapts a function into an Operation.
type OperationFunc struct {
	OperationName string
	Run           func(executionContext context.Context, environment *Environment) error
}

// Name returns the operation identifier used in error wrapping and logs.
func (operation OperationFunc) Name() string {
	return operation.OperationName
}

// Execute invokes the wrapped function.
func (operation OperationFunc) Execute(executionContext context.Context, environment *Environment) error {
	if operation.Run == nil {
		return nil
	}
	return operation.Run(executionContext, environment)
}
