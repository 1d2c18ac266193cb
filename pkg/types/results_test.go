package types_test

import (
	stderrors "errors"
	"testing"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackResultAddEntry(t *testing.T) {
	result := &types.PackResult{Output: "out.vpk"}

	result.AddEntry(types.EntryResult{Source: "a", Destination: "a", Size: 3})
	result.AddEntry(types.EntryResult{Source: "b", Destination: "b", Err: stderrors.New("read failed")})

	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 1, result.Failures)
	assert.False(t, result.Complete())

	failed := result.FailedEntries()
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Source)
	assert.Equal(t, "read failed", failed[0].Error)
	assert.True(t, failed[0].Failed())
}

func TestPackResultCompleteWhenNoFailures(t *testing.T) {
	result := &types.PackResult{}
	result.AddEntry(types.EntryResult{Source: "a", Destination: "a"})

	assert.True(t, result.Complete())
	assert.Empty(t, result.FailedEntries())
}
