package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/tjper/spacex/internal/prefs"
	"github.com/tjper/spacex/internal/spacex"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSavedLaunchesScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(zap.NewNop(), prefs.NewMemory())

	require.Empty(t, store.LoadAll(ctx))

	store.Save(ctx, spacex.LaunchDetail{ID: "42", MissionName: strptr("Demo")})
	all := store.LoadAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "42", all[0].ID)

	store.Save(ctx, spacex.LaunchDetail{ID: "7", MissionName: strptr("Other")})
	require.Len(t, store.LoadAll(ctx), 2)

	store.Unsave(ctx, "42")
	all = store.LoadAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "7", all[0].ID)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(zap.NewNop(), prefs.NewMemory())

	detail := fullDetail("109")
	store.Save(ctx, detail)
	require.True(t, store.IsSaved(ctx, detail.ID))

	all := store.LoadAll(ctx)
	require.Len(t, all, 1)
	if diff := cmp.Diff(detail, all[0]); diff != "" {
		t.Fatalf("saved launch mismatch (-want +got):\n%s", diff)
	}

	store.Unsave(ctx, detail.ID)
	require.False(t, store.IsSaved(ctx, detail.ID))
}

func TestSaveIsUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(zap.NewNop(), prefs.NewMemory())

	store.Save(ctx, spacex.LaunchDetail{ID: "1", MissionName: strptr("before")})
	store.Save(ctx, spacex.LaunchDetail{ID: "2"})
	store.Save(ctx, spacex.LaunchDetail{ID: "1", MissionName: strptr("after")})
	store.Save(ctx, spacex.LaunchDetail{ID: "1", MissionName: strptr("after")})

	all := store.LoadAll(ctx)
	require.Len(t, all, 2)

	count := 0
	for _, detail := range all {
		if detail.ID != "1" {
			continue
		}
		count++
		require.Equal(t, "after", *detail.MissionName)
	}
	require.Equal(t, 1, count)
}

func TestUnsaveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newCountingPrefs(prefs.NewMemory())
	store := NewStore(zap.NewNop(), backend)

	store.Save(ctx, spacex.LaunchDetail{ID: "1"})
	before := store.LoadAll(ctx)
	writes := backend.Sets()

	store.Unsave(ctx, "never-saved")

	require.Equal(t, writes, backend.Sets())
	if diff := cmp.Diff(before, store.LoadAll(ctx)); diff != "" {
		t.Fatalf("collection changed (-want +got):\n%s", diff)
	}
}

func TestUnsaveOnEmptyStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newCountingPrefs(prefs.NewMemory())
	store := NewStore(zap.NewNop(), backend)

	store.Unsave(ctx, "1")

	require.Equal(t, 0, backend.Sets())
	require.Empty(t, store.LoadAll(ctx))
}

func TestSaveWithoutIDIsIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newCountingPrefs(prefs.NewMemory())
	store := NewStore(zap.NewNop(), backend)

	store.Save(ctx, spacex.LaunchDetail{MissionName: strptr("anonymous")})

	require.Equal(t, 0, backend.Sets())
	require.Empty(t, store.LoadAll(ctx))
}

func TestCorruptEntryIsSkipped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := prefs.NewMemory()

	good, err := encodeDetail(spacex.LaunchDetail{ID: "1"})
	require.Nil(t, err)
	noID, err := encodeDetail(spacex.LaunchDetail{MissionName: strptr("no id")})
	require.Nil(t, err)

	raw, err := encodeCollection([][]byte{[]byte("garbage"), good, noID})
	require.Nil(t, err)
	require.Nil(t, backend.Set(ctx, DefaultKey, raw))

	store := NewStore(zap.NewNop(), backend)

	all := store.LoadAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "1", all[0].ID)

	// Corrupt entries survive writes untouched.
	store.Save(ctx, spacex.LaunchDetail{ID: "2"})
	store.Unsave(ctx, "1")

	b, err := backend.Get(ctx, DefaultKey)
	require.Nil(t, err)
	blobs, err := decodeCollection(b)
	require.Nil(t, err)
	require.Len(t, blobs, 3)
	require.Equal(t, []byte("garbage"), blobs[0])

	all = store.LoadAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "2", all[0].ID)
}

func TestCorruptCollectionIsNotOverwritten(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := prefs.NewMemory()
	require.Nil(t, backend.Set(ctx, DefaultKey, []byte("not msgpack at all")))

	store := NewStore(zap.NewNop(), backend)

	require.Empty(t, store.LoadAll(ctx))
	require.False(t, store.IsSaved(ctx, "1"))

	store.Save(ctx, spacex.LaunchDetail{ID: "1"})
	store.Unsave(ctx, "1")

	b, err := backend.Get(ctx, DefaultKey)
	require.Nil(t, err)
	require.Equal(t, []byte("not msgpack at all"), b)
}

func TestWriteFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := prefs.NewMemory()
	NewStore(zap.NewNop(), backend).Save(ctx, spacex.LaunchDetail{ID: "1"})

	failing := prefs.NewStoreMock(
		prefs.WithGet(backend.Get),
		prefs.WithSet(func(context.Context, string, []byte) error {
			return errors.New("disk full")
		}),
	)
	store := NewStore(zap.NewNop(), failing)

	store.Save(ctx, spacex.LaunchDetail{ID: "2"})
	store.Unsave(ctx, "1")

	all := store.LoadAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "1", all[0].ID)
	require.False(t, store.IsSaved(ctx, "2"))
}

func TestReadFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newCountingPrefs(prefs.NewMemory())
	backend.getErr = errors.New("connection refused")
	store := NewStore(zap.NewNop(), backend)

	require.Empty(t, store.LoadAll(ctx))
	store.Save(ctx, spacex.LaunchDetail{ID: "1"})
	require.Equal(t, 0, backend.Sets())
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := prefs.NewMemory()

	good, err := encodeDetail(spacex.LaunchDetail{ID: "1"})
	require.Nil(t, err)
	raw, err := encodeCollection([][]byte{[]byte("garbage"), good})
	require.Nil(t, err)
	require.Nil(t, backend.Set(ctx, DefaultKey, raw))

	store := NewStore(zap.NewNop(), backend)
	store.Clear(ctx)

	_, err = backend.Get(ctx, DefaultKey)
	require.ErrorIs(t, err, prefs.ErrKeyDNE)
	require.Empty(t, store.LoadAll(ctx))

	// Clearing an absent collection is harmless.
	store.Clear(ctx)
	store.Save(ctx, spacex.LaunchDetail{ID: "2"})
	require.True(t, store.IsSaved(ctx, "2"))
}

func TestClearFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := prefs.NewMemory()
	NewStore(zap.NewNop(), backend).Save(ctx, spacex.LaunchDetail{ID: "1"})

	failing := prefs.NewStoreMock(
		prefs.WithGet(backend.Get),
		prefs.WithDelete(func(context.Context, string) error {
			return errors.New("connection reset")
		}),
	)
	store := NewStore(zap.NewNop(), failing)

	store.Clear(ctx)
	require.True(t, store.IsSaved(ctx, "1"))
}

func TestWithKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := prefs.NewMemory()

	alpha := NewStore(zap.NewNop(), backend, WithKey("alpha"))
	beta := NewStore(zap.NewNop(), backend, WithKey("beta"))

	alpha.Save(ctx, spacex.LaunchDetail{ID: "1"})

	require.True(t, alpha.IsSaved(ctx, "1"))
	require.False(t, beta.IsSaved(ctx, "1"))

	_, err := backend.Get(ctx, DefaultKey)
	require.ErrorIs(t, err, prefs.ErrKeyDNE)
}

func TestConcurrentSaves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(zap.NewNop(), prefs.NewMemory())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Save(ctx, spacex.LaunchDetail{ID: fmt.Sprintf("%d", i)})
		}(i)
	}
	wg.Wait()

	require.Len(t, store.LoadAll(ctx), n)
}

// --- helpers ---

func strptr(s string) *string { return &s }

func floatptr(f float64) *float64 { return &f }

func fullDetail(id string) spacex.LaunchDetail {
	return spacex.LaunchDetail{
		ID:              id,
		SiteName:        strptr("CCAFS SLC 40"),
		MissionName:     strptr("Starlink-15 (v1.0)"),
		LaunchDateUTC:   strptr("2020-10-24T15:31:00.000Z"),
		RocketName:      strptr("Falcon 9"),
		RocketType:      strptr("FT"),
		RocketHeightM:   floatptr(70),
		RocketDiameterM: floatptr(3.7),
		RocketMassKg:    floatptr(549054),
		Description:     strptr("Fifteenth batch of Starlink satellites."),
		MissionPatchURL: strptr("https://images2.imgbox.com/d2/3b/bQaWiil0_o.png"),
		WikipediaURL:    strptr("https://en.wikipedia.org/wiki/Starlink"),
	}
}

// countingPrefs wraps a prefs.Store, counting Set calls and optionally
// failing Get.
type countingPrefs struct {
	prefs.Store

	mutex  sync.Mutex
	sets   int
	getErr error
}

func newCountingPrefs(store prefs.Store) *countingPrefs {
	return &countingPrefs{Store: store}
}

func (c *countingPrefs) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.Store.Get(ctx, key)
}

func (c *countingPrefs) Set(ctx context.Context, key string, value []byte) error {
	c.mutex.Lock()
	c.sets++
	c.mutex.Unlock()
	return c.Store.Set(ctx, key, value)
}

func (c *countingPrefs) Sets() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.sets
}
