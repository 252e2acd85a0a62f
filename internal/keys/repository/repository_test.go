package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	models "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/model"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("musclemap"),
		postgres.WithUsername("musclemap"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = container

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*models.DeviceKeyBundle)(nil),
		(*models.OneTimePreKey)(nil),
		(*models.AccountEncryptionState)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupKeys(t *testing.T) {
	t.Helper()
	for _, table := range []string{"device_key_bundles", "one_time_pre_keys", "account_encryption_states"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func testBundle(userID uuid.UUID, deviceID string) *models.DeviceKeyBundle {
	identity := make([]byte, 32)
	prekey := make([]byte, 32)
	signature := make([]byte, 64)
	for i := range identity {
		identity[i] = byte(i + 1)
	}
	for i := range prekey {
		prekey[i] = byte(i + 101)
	}
	for i := range signature {
		signature[i] = byte(i + 33)
	}
	now := time.Now().UTC()
	return &models.DeviceKeyBundle{
		UserID:                 userID,
		DeviceID:               deviceID,
		IdentityKeyPublic:      identity,
		IdentityKeyFingerprint: "aabbcc",
		SignedPreKeyPublic:     prekey,
		SignedPreKeySignature:  signature,
		SignedPreKeyID:         1,
		SignedPreKeyCreatedAt:  now,
		LastActiveAt:           now,
	}
}

func testPreKeys(userID uuid.UUID, deviceID string, n int) []models.OneTimePreKey {
	keys := make([]models.OneTimePreKey, n)
	for i := range keys {
		pub := make([]byte, 32)
		for j := range pub {
			pub[j] = byte(i + j + 1)
		}
		keys[i] = models.OneTimePreKey{
			UserID:    userID,
			DeviceID:  deviceID,
			KeyID:     uint32(i + 1),
			PublicKey: pub,
		}
	}
	return keys
}

func Test_BundleFuncs(t *testing.T) {
	repo := NewKeyRepository(testDB, logger.NewNop())
	userID := uuid.New()

	t.Run("upsert inserts then replaces", func(t *testing.T) {
		defer cleanupKeys(t)

		bundle := testBundle(userID, "device-1")
		require.NoError(t, repo.UpsertBundle(t.Context(), bundle))

		rotated := testBundle(userID, "device-1")
		rotated.SignedPreKeyID = 2
		rotated.SignedPreKeyPublic[0] = 0xFF
		require.NoError(t, repo.UpsertBundle(t.Context(), rotated))

		count, err := repo.CountDevices(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := repo.GetBundle(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, uint32(2), got.SignedPreKeyID)
		assert.EqualValues(t, rotated.SignedPreKeyPublic, got.SignedPreKeyPublic)
		assert.False(t, got.CreatedAt.IsZero(), "created_at should be set by DB")
	})

	t.Run("get bundle not found", func(t *testing.T) {
		defer cleanupKeys(t)

		_, err := repo.GetBundle(t.Context(), userID, "no-such-device")
		assert.ErrorIs(t, err, ErrBundleNotFound)
	})

	t.Run("most recent bundle follows last_active_at", func(t *testing.T) {
		defer cleanupKeys(t)

		older := testBundle(userID, "device-old")
		older.LastActiveAt = time.Now().Add(-time.Hour)
		newer := testBundle(userID, "device-new")
		require.NoError(t, repo.UpsertBundle(t.Context(), older))
		require.NoError(t, repo.UpsertBundle(t.Context(), newer))

		got, err := repo.GetMostRecentBundle(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, "device-new", got.DeviceID)

		deviceIDs, err := repo.ListDeviceIDs(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"device-new", "device-old"}, deviceIDs)
	})

	t.Run("touch device bumps last_active_at", func(t *testing.T) {
		defer cleanupKeys(t)

		bundle := testBundle(userID, "device-1")
		bundle.LastActiveAt = time.Now().Add(-time.Hour)
		require.NoError(t, repo.UpsertBundle(t.Context(), bundle))

		require.NoError(t, repo.TouchDevice(t.Context(), userID, "device-1"))

		got, err := repo.GetBundle(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), got.LastActiveAt, time.Minute)
	})
}

func Test_OneTimePreKeyFuncs(t *testing.T) {
	repo := NewKeyRepository(testDB, logger.NewNop())
	userID := uuid.New()
	claimerID := uuid.New()

	t.Run("insert and count unused", func(t *testing.T) {
		defer cleanupKeys(t)

		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), testPreKeys(userID, "device-1", 10)))

		count, err := repo.CountUnusedOneTimePreKeys(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, 10, count)
	})

	t.Run("claim marks used and takes the lowest key id", func(t *testing.T) {
		defer cleanupKeys(t)

		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), testPreKeys(userID, "device-1", 5)))

		key, err := repo.ClaimOneTimePreKey(t.Context(), userID, "device-1", claimerID)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), key.KeyID)
		assert.True(t, key.Used)
		require.NotNil(t, key.UsedByUserID)
		assert.Equal(t, claimerID, *key.UsedByUserID)

		count, err := repo.CountUnusedOneTimePreKeys(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("concurrent claims never hand out the same key", func(t *testing.T) {
		defer cleanupKeys(t)

		const pool = 10
		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), testPreKeys(userID, "device-1", pool)))

		var wg sync.WaitGroup
		claimed := make(chan uint32, pool)
		for i := 0; i < pool; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key, err := repo.ClaimOneTimePreKey(context.Background(), userID, "device-1", uuid.New())
				assert.NoError(t, err)
				claimed <- key.KeyID
			}()
		}
		wg.Wait()
		close(claimed)

		seen := map[uint32]bool{}
		for keyID := range claimed {
			assert.False(t, seen[keyID], "key %d claimed twice", keyID)
			seen[keyID] = true
		}
		assert.Len(t, seen, pool)

		count, err := repo.CountUnusedOneTimePreKeys(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("empty pool", func(t *testing.T) {
		defer cleanupKeys(t)

		_, err := repo.ClaimOneTimePreKey(t.Context(), userID, "device-1", claimerID)
		assert.ErrorIs(t, err, ErrNoPreKeysAvailable)
	})

	t.Run("re-upload un-marks a used key", func(t *testing.T) {
		defer cleanupKeys(t)

		keys := testPreKeys(userID, "device-1", 1)
		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), keys))

		_, err := repo.ClaimOneTimePreKey(t.Context(), userID, "device-1", claimerID)
		require.NoError(t, err)

		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), testPreKeys(userID, "device-1", 1)))

		count, err := repo.CountUnusedOneTimePreKeys(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("purge used keys past retention", func(t *testing.T) {
		defer cleanupKeys(t)

		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), testPreKeys(userID, "device-1", 3)))
		_, err := repo.ClaimOneTimePreKey(t.Context(), userID, "device-1", claimerID)
		require.NoError(t, err)

		purged, err := repo.PurgeUsedOneTimePreKeys(t.Context(), time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.EqualValues(t, 1, purged)

		purged, err = repo.PurgeUsedOneTimePreKeys(t.Context(), time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.EqualValues(t, 0, purged)
	})
}

func Test_DeleteDevice(t *testing.T) {
	repo := NewKeyRepository(testDB, logger.NewNop())
	userID := uuid.New()

	t.Run("removes the device and its prekeys", func(t *testing.T) {
		defer cleanupKeys(t)

		require.NoError(t, repo.UpsertBundle(t.Context(), testBundle(userID, "device-1")))
		require.NoError(t, repo.UpsertBundle(t.Context(), testBundle(userID, "device-2")))
		require.NoError(t, repo.InsertOneTimePreKeys(t.Context(), testPreKeys(userID, "device-1", 5)))

		remaining, err := repo.DeleteDevice(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		count, err := repo.CountUnusedOneTimePreKeys(t.Context(), userID, "device-1")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("unknown device", func(t *testing.T) {
		defer cleanupKeys(t)

		_, err := repo.DeleteDevice(t.Context(), userID, "no-such-device")
		assert.ErrorIs(t, err, ErrBundleNotFound)
	})
}

func Test_AccountE2EE(t *testing.T) {
	repo := NewKeyRepository(testDB, logger.NewNop())
	userID := uuid.New()

	t.Run("defaults to false", func(t *testing.T) {
		defer cleanupKeys(t)

		capable, err := repo.GetAccountE2EE(t.Context(), userID)
		require.NoError(t, err)
		assert.False(t, capable)
	})

	t.Run("set and clear", func(t *testing.T) {
		defer cleanupKeys(t)

		require.NoError(t, repo.SetAccountE2EE(t.Context(), userID, true))
		capable, err := repo.GetAccountE2EE(t.Context(), userID)
		require.NoError(t, err)
		assert.True(t, capable)

		require.NoError(t, repo.SetAccountE2EE(t.Context(), userID, false))
		capable, err = repo.GetAccountE2EE(t.Context(), userID)
		require.NoError(t, err)
		assert.False(t, capable)
	})
}
