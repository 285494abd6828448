package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUUID16(t *testing.T) {
	first := UUID16()
	require.Len(t, first, 16)
	require.NotEqual(t, first, UUID16())
}

func TestGenerateClientOrderID(t *testing.T) {
	id := GenerateClientOrderID("Coindax")
	require.True(t, strings.HasPrefix(id, "cdxlink-coindax-"), id)
	require.Len(t, id, len("cdxlink-coindax-")+16)
}
