package logger_test

import (
	"testing"

	"github.com/jrsteele09/codelearn-landing/internal/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	l := logger.Setup(false)
	require.Equal(t, zerolog.InfoLevel, l.GetLevel())
	require.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	l = logger.Setup(true)
	require.Equal(t, zerolog.DebugLevel, l.GetLevel())
}
