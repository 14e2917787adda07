package utils_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/gfx-rs/gfx-sub004/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestLoggerOrDiscard(t *testing.T) {
	logger := utils.LoggerOrDiscard(nil)
	require.NotNil(t, logger)
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))

	existing := slog.Default()
	require.Same(t, existing, utils.LoggerOrDiscard(existing))
}

func TestOptionalMutexGuardsCounter(t *testing.T) {
	mutex := utils.OptionalMutex{UseMutex: true}
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				mutex.Lock()
				counter++
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 8000, counter)
}

func TestOptionalRWMutexDisabledDoesNotBlock(t *testing.T) {
	var mutex utils.OptionalRWMutex

	mutex.Lock()
	mutex.RLock()
	mutex.Lock()
	mutex.RUnlock()
	mutex.Unlock()
	mutex.Unlock()
}
