package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageVersion(t *testing.T) {
	require.Contains(t, UsageVersion(false), "mvdict")
}

func TestUsageVersionWithDeps(t *testing.T) {
	require.Contains(t, UsageVersion(true), "github.com/raz729/MultiValueDictionary")
}
