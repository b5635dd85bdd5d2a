package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/karnaval/go-costume-catalog/internal/common"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func cacheTestHelper(t *testing.T) (redismock.ClientMock, CacheRepository) {
	t.Helper()

	db, mock := redismock.NewClientMock()
	return mock, NewCacheRepository(db)
}

func TestCacheRepository_SetIfNotExists(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	const key = "catalog:idempotency:abc"

	tests := []struct {
		name    string
		doMock  func()
		want    bool
		wantErr bool
	}{
		{
			name: "lock taken",
			doMock: func() {
				mock.ExpectSetNX(key, "pending", time.Hour).SetVal(true)
			},
			want: true,
		},
		{
			name: "lock already held",
			doMock: func() {
				mock.ExpectSetNX(key, "pending", time.Hour).SetVal(false)
			},
			want: false,
		},
		{
			name: "redis closed",
			doMock: func() {
				mock.ExpectSetNX(key, "pending", time.Hour).SetErr(redis.ErrClosed)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			got, err := rc.SetIfNotExists(context.TODO(), key, "pending", time.Hour)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)

			assert.NoError(t, mock.ExpectationsWereMet())
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_Get(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	tests := []struct {
		name      string
		doMock    func()
		want      string
		wantErrIs error
		wantErr   bool
	}{
		{
			name:   "hit is trimmed",
			doMock: func() { mock.ExpectGet("k").SetVal(" {\"status\":\"finished\"}\n") },
			want:   `{"status":"finished"}`,
		},
		{
			name:      "miss",
			doMock:    func() { mock.ExpectGet("k").RedisNil() },
			wantErrIs: common.ErrDataNotFound,
			wantErr:   true,
		},
		{
			name:    "failure",
			doMock:  func() { mock.ExpectGet("k").SetErr(redis.ErrClosed) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			got, err := rc.Get(context.TODO(), "k")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_SetDelPing(t *testing.T) {
	mock, rc := cacheTestHelper(t)
	ctx := context.TODO()

	mock.ExpectSet("k", "v", time.Minute).SetVal("OK")
	assert.NoError(t, rc.Set(ctx, "k", "v", time.Minute))

	mock.ExpectDel("k", "k2").SetVal(2)
	assert.NoError(t, rc.Del(ctx, "k", "k2"))

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, rc.Ping(ctx))

	mock.ExpectPing().SetErr(redis.ErrClosed)
	assert.Error(t, rc.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
