package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	operationFailedErrorTemplateConstant  = "workflow operation %s failed: %w"
	operationStartedDebugMessageConstant  = "workflow operation started"
	operationFinishedDebugMessageConstant = "workflow operation finished"
	executorLogFieldOperationConstant     = "operation"
)

// Executor runs a fixed sequence of workflow operations.
type Executor struct {
	operations  []Operation
	environment *Environment
}

// NewExecutor constructs an Executor over the supplied operations.
func NewExecutor(operations []Operation, environment *Environment) *Executor {
	if environment == nil {
		environment = &Environment{Logger: zap.NewNop()}
	}
	if environment.Logger == nil {
		environment.Logger = zap.NewNop()
	}
	return &Executor{operations: append([]Operation{}, operations...), environment: environment}
}

// Execute runs every operation in order, stopping at the first failure.
func (executor *Executor) Execute(executionContext context.Context) error {
	for _, operation := range executor.operations {
		if operation == nil {
			continue
		}

		executor.environment.Logger.Debug(
			operationStartedDebugMessageConstant,
			zap.String(executorLogFieldOperationConstant, operation.Name()),
		)

		if executeError := operation.Execute(executionContext, executor.environment); executeError != nil {
			return fmt.Errorf(operationFailedErrorTemplateConstant, operation.Name(), executeError)
		}

		executor.environment.Logger.Debug(
			operationFinishedDebugMessageConstant,
			zap.String(executorLogFieldOperationConstant, operation.Name()),
		)
	}

	return nil
}
