package fppc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/fppc/golden"
)

func TestGoldenCases(t *testing.T) {
	t.Parallel()

	paths, err := golden.Collect([]string{"testdata"})
	require.NoError(t, err)

	report, err := golden.NewRunner(nil, false).Run(context.Background(), paths)
	require.NoError(t, err)
	require.NotEmpty(t, report.Outcomes)

	for _, o := range report.Failed() {
		assert.Fail(t, o.Describe())
	}
}
