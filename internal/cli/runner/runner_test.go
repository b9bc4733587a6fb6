package runner

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChainOrder(t *testing.T) {
	var order []string

	makeInterceptor := func(name string) Interceptor {
		return func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
			order = append(order, name+"-before")
			err := next()
			order = append(order, name+"-after")
			return err
		}
	}

	runner := NewRunner().Use(
		makeInterceptor("first"),
		makeInterceptor("second"),
		makeInterceptor("third"),
	)

	handler := func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		order = append(order, "handler")
		return nil
	}

	cmd := &cobra.Command{}
	err := runner.Wrap(handler)(cmd, nil)
	require.NoError(t, err)

	expected := []string{
		"first-before",
		"second-before",
		"third-before",
		"handler",
		"third-after",
		"second-after",
		"first-after",
	}

	require.Len(t, order, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp, order[i], "order[%d]", i)
	}
}

func TestInterceptorChainStopsOnError(t *testing.T) {
	var order []string
	expectedErr := errors.New("interceptor error")

	runner := NewRunner().Use(
		func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
			order = append(order, "first")
			return next()
		},
		func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
			order = append(order, "second-fails")
			return expectedErr
		},
		func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
			order = append(order, "third-should-not-run")
			return next()
		},
	)

	handler := func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		order = append(order, "handler-should-not-run")
		return nil
	}

	cmd := &cobra.Command{}
	err := runner.Wrap(handler)(cmd, nil)

	assert.ErrorIs(t, err, expectedErr)
	assert.Len(t, order, 2)
	assert.Equal(t, "first", order[0])
	assert.Equal(t, "second-fails", order[1])
}

func TestContextGetsFreshOperationID(t *testing.T) {
	a := NewContext()
	b := NewContext()
	assert.NotEmpty(t, a.OperationID)
	assert.NotEqual(t, a.OperationID, b.OperationID)
}

func TestBaseRunnerLogsAndPropagatesResult(t *testing.T) {
	handlerCalled := false
	handler := func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		handlerCalled = true
		assert.NotEmpty(t, ctx.OperationID)
		return nil
	}

	cmd := &cobra.Command{}
	err := Base().Wrap(handler)(cmd, nil)

	assert.NoError(t, err)
	assert.True(t, handlerCalled)
}

func TestBaseRunnerPropagatesHandlerError(t *testing.T) {
	expectedErr := errors.New("handler error")
	handler := func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
		return expectedErr
	}

	cmd := &cobra.Command{}
	err := Base().Wrap(handler)(cmd, nil)

	assert.ErrorIs(t, err, expectedErr)
}
