package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galkatzh/JAMD-events/internal/workflow"
)

const (
	testFirstOperationNameConstant  = "scrape-events"
	testSecondOperationNameConstant = "publish-artifacts"
	testFailureMessageConstant      = "endpoint unavailable"
)

func TestExecutorRunsOperationsInOrder(testInstance *testing.T) {
	executedOperations := make([]string, 0)

	buildOperation := func(operationName string) workflow.Operation {
		return workflow.OperationFunc{
			OperationName: operationName,
			Run: func(executionContext context.Context, environment *workflow.Environment) error {
				executedOperations = append(executedOperations, operationName)
				return nil
			},
		}
	}

	executor := workflow.NewExecutor(
		[]workflow.Operation{buildOperation(testFirstOperationNameConstant), buildOperation(testSecondOperationNameConstant)},
		nil,
	)

	require.NoError(testInstance, executor.Execute(context.Background()))
	require.Equal(testInstance, []string{testFirstOperationNameConstant, testSecondOperationNameConstant}, executedOperations)
}

func TestExecutorStopsAtFirstFailureAndNamesOperation(testInstance *testing.T) {
	secondOperationExecuted := false

	failingOperation := workflow.OperationFunc{
		OperationName: testFirstOperationNameConstant,
		Run: func(executionContext context.Context, environment *workflow.Environment) error {
			return errors.New(testFailureMessageConstant)
		},
	}
	subsequentOperation := workflow.OperationFunc{
		OperationName: testSecondOperationNameConstant,
		Run: func(executionContext context.Context, environment *workflow.Environment) error {
			secondOperationExecuted = true
			return nil
		},
	}

	executor := workflow.NewExecutor([]workflow.Operation{failingOperation, subsequentOperation}, nil)

	executionError := executor.Execute(context.Background())
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), testFirstOperationNameConstant)
	require.Contains(testInstance, executionError.Error(), testFailureMessageConstant)
	require.False(testInstance, secondOperationExecuted)
}
