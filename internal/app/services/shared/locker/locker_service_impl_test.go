package locker

import (
	"context"
	"errors"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestLockService_TryLockAndUnlock(t *testing.T) {
	ctx := context.Background()
	key := constvars.RedisKeyPatientStoreLock

	t.Run("Acquire then release", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("TrySetNX", mock.Anything, key, mock.AnythingOfType("string"), 10*time.Second).Return(true, nil).Once()

		acquired, lockValue, err := service.TryLock(ctx, key, 10*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		redisRepo.On("Get", mock.Anything, key).Return(strconv.Quote(lockValue), nil).Once()
		redisRepo.On("Delete", mock.Anything, key).Return(nil).Once()

		err = service.Unlock(ctx, key, lockValue)
		require.NoError(t, err)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Lock held elsewhere", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(false, nil).Once()

		acquired, lockValue, err := service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("Unlock leaves a lock owned by someone else", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("Get", mock.Anything, key).Return(strconv.Quote("other-owner"), nil).Once()

		err := service.Unlock(ctx, key, "mine")
		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unlock of an expired lock is a no-op", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("Get", mock.Anything, key).Return("", nil).Once()

		err := service.Unlock(ctx, key, "mine")
		assert.NoError(t, err)
		redisRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAcquireWithRetry(t *testing.T) {
	ctx := context.Background()
	key := constvars.RedisKeyPatientStoreLock

	t.Run("Succeeds once the lock frees up", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(false, nil).Twice()
		redisRepo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(true, nil).Once()

		lockValue, err := AcquireWithRetry(ctx, service, key, time.Second, 5, time.Millisecond)
		require.NoError(t, err)
		assert.NotEmpty(t, lockValue)
		redisRepo.AssertNumberOfCalls(t, "TrySetNX", 3)
	})

	t.Run("Gives up after the last attempt", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(false, nil)

		_, err := AcquireWithRetry(ctx, service, key, time.Second, 3, time.Millisecond)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		redisRepo.AssertNumberOfCalls(t, "TrySetNX", 3)
	})

	t.Run("Non positive attempts still try once", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(true, nil).Once()

		lockValue, err := AcquireWithRetry(ctx, service, key, time.Second, 0, time.Millisecond)
		require.NoError(t, err)
		assert.NotEmpty(t, lockValue)
		redisRepo.AssertNumberOfCalls(t, "TrySetNX", 1)
	})

	t.Run("Redis failure is returned as is", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		service := NewLockService(redisRepo, zap.NewNop())

		redisRepo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))

		_, err := AcquireWithRetry(ctx, service, key, time.Second, 3, time.Millisecond)
		assert.EqualError(t, err, "connection refused")
		redisRepo.AssertNumberOfCalls(t, "TrySetNX", 1)
	})
}
