package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPomodoroConfig(t *testing.T) {
	config := DefaultPomodoroConfig()
	assert.Equal(t, 1500*time.Second, config.WorkDuration)
	assert.Equal(t, 300*time.Second, config.RestDuration)
	require.NoError(t, config.Validate())
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cases := []PomodoroConfig{
		{WorkDuration: 0, RestDuration: time.Minute},
		{WorkDuration: time.Minute, RestDuration: -time.Second},
	}
	for _, config := range cases {
		err := config.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}
