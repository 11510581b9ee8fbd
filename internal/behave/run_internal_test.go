package behave

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tinytorch-edu/titod/api"
	"github.com/tinytorch-edu/titod/internal/gateway"
)

func TestClassifySpeaksApiStatuses(t *testing.T) {
	require.Equal(t, api.Success, classify(nil))
	require.Equal(t, api.ToolNotFound, classify(&gateway.NotFoundError{Name: "tito"}))
	require.Equal(t, api.NonZeroExit, classify(&gateway.ExitError{ExitCode: 2}))
	require.Equal(t, api.Timeout, classify(&gateway.TimeoutError{Limit: time.Second}))
	require.Equal(t, api.InternalError, classify(errors.New("sink unreachable")))
}
