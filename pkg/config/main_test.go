package config

import (
	"os"
	"testing"

	"github.com/arthur-debert/volt/pkg/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunQuiet(m))
}
