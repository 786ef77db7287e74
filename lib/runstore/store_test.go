package runstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordAndList(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	first := time.Unix(1700000000, 0)
	second := first.Add(time.Hour)

	_, err = store.Record(ctx, Run{
		Started:  first,
		Finished: first.Add(time.Minute),
		Links:    12,
		Records:  340,
		Skipped:  2,
		Output:   "metadata.csv",
	})
	require.NoError(t, err)

	id, err := store.Record(ctx, Run{
		Started:  second,
		Finished: second.Add(time.Minute),
		Links:    12,
		Records:  338,
		Skipped:  4,
		Output:   "metadata.csv",
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	runs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// most recent first
	require.Equal(t, second.Unix(), runs[0].Started.Unix())
	require.Equal(t, 338, runs[0].Records)
	require.Equal(t, 4, runs[0].Skipped)
	require.Equal(t, first.Unix(), runs[1].Started.Unix())
	require.Equal(t, 340, runs[1].Records)
	require.Equal(t, "metadata.csv", runs[1].Output)
}

func TestListEmpty(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, runs)
}
