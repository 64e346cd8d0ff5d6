package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateOf(t *testing.T) {
	require.Equal(t, "TX", StateOf("Austin"))
	require.Equal(t, "WA", StateOf("Pasco"))
	require.Empty(t, StateOf("Springfield"))
	require.Empty(t, StateOf("austin"))
}
