package container

import (
	"context"
	"testing"

	"normtest/adapters/memory"
	"normtest/domain/normality"
	"normtest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.Language = "pt-BR"

	c, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.DB)
	assert.IsType(t, &memory.ResultRepository{}, c.Results)
	assert.Equal(t, "pt-BR", c.Service.Defaults().Language)

	ev, err := c.Service.Fit(context.Background(), c.Service.Defaults(), normality.FitRequest{
		Test: normality.KolmogorovSmirnov, N: 5, Statistic: 0.2, Mode: normality.ModeCritical, Detail: normality.DetailShort,
	})
	require.NoError(t, err)
	assert.Contains(t, ev.Summary, "seguem")

	recent, err := c.Service.RecentResults(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	c := &Container{}
	assert.Error(t, c.InitWithDatabase(context.Background(), nil))
}
