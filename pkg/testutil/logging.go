package testutil

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RunQuiet runs the tests of a package with global logging disabled and
// returns the exit code for os.Exit. Use it from TestMain.
func RunQuiet(m *testing.M) int {
	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(prevLevel)
	return m.Run()
}

// KeepGlobalLogger restores the global logger and level when t ends, for
// tests that reconfigure them.
func KeepGlobalLogger(t *testing.T) {
	t.Helper()

	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}
