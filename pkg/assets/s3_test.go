package assets_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rishadfb/email-creation/pkg/assets"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		storage, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Bucket:      "test-bucket",
			Region:      "us-east-1",
			AccessKeyID: "test-key",
			SecretKey:   "test-secret",
		})
		require.NoError(t, err)
		require.NotNil(t, storage)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Region: "us-east-1",
		})
		assert.ErrorIs(t, err, assets.ErrInvalidConfig)
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()
		_, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Bucket: "test-bucket",
		})
		assert.ErrorIs(t, err, assets.ErrInvalidConfig)
	})
}

func TestS3Storage_URL(t *testing.T) {
	t.Parallel()

	t.Run("default AWS URL", func(t *testing.T) {
		t.Parallel()
		storage, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Bucket: "test-bucket",
			Region: "us-east-1",
		}, assets.WithS3Client(&MockS3Client{}))
		require.NoError(t, err)

		assert.Equal(t,
			"https://test-bucket.s3.us-east-1.amazonaws.com/images/a.png",
			storage.URL("images/a.png"))
	})

	t.Run("endpoint derived URL", func(t *testing.T) {
		t.Parallel()
		storage, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Bucket:         "test-bucket",
			Region:         "us-east-1",
			Endpoint:       "http://localhost:9000",
			ForcePathStyle: true,
		}, assets.WithS3Client(&MockS3Client{}))
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9000/test-bucket/images/a.png", storage.URL("images/a.png"))
	})

	t.Run("custom base URL", func(t *testing.T) {
		t.Parallel()
		storage, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Bucket:  "test-bucket",
			Region:  "us-east-1",
			BaseURL: "https://cdn.example.com",
		}, assets.WithS3Client(&MockS3Client{}))
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/images/a.png", storage.URL("/images/a.png"))
	})
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	newStorage := func(t *testing.T, client assets.S3Client) *assets.S3Storage {
		t.Helper()
		storage, err := assets.NewS3Storage(context.Background(), assets.S3Config{
			Bucket:  "test-bucket",
			Region:  "us-east-1",
			BaseURL: "https://cdn.example.com/",
		}, assets.WithS3Client(client))
		require.NoError(t, err)
		return storage
	}

	t.Run("successful upload", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
			if *input.Bucket != "test-bucket" || *input.Key != "images/a.png" {
				return false
			}
			if *input.ContentType != "image/png" {
				return false
			}
			body, err := io.ReadAll(input.Body)
			return err == nil && string(body) == "png-bytes"
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		storage := newStorage(t, client)
		url, err := storage.Put(context.Background(), "images/a.png", []byte("png-bytes"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/images/a.png", url)
		client.AssertExpectations(t)
	})

	t.Run("leading slash stripped", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
			return *input.Key == "a.png"
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		storage := newStorage(t, client)
		url, err := storage.Put(context.Background(), "/a.png", []byte("x"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.png", url)
	})

	t.Run("empty content type defaults", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
			return *input.ContentType == "application/octet-stream"
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		storage := newStorage(t, client)
		_, err := storage.Put(context.Background(), "a.bin", []byte("x"), "")
		require.NoError(t, err)
	})

	t.Run("rejects traversal key", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		storage := newStorage(t, client)

		_, err := storage.Put(context.Background(), "../secrets.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, assets.ErrInvalidKey)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		storage := newStorage(t, &MockS3Client{})
		_, err := storage.Put(context.Background(), "  ", []byte("x"), "image/png")
		assert.ErrorIs(t, err, assets.ErrEmptyKey)
	})

	t.Run("access denied classified", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}).Once()

		storage := newStorage(t, client)
		_, err := storage.Put(context.Background(), "a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, assets.ErrAccessDenied)
	})

	t.Run("throttling classified", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "SlowDown", Message: "slow down"}).Once()

		storage := newStorage(t, client)
		_, err := storage.Put(context.Background(), "a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, assets.ErrServiceUnavailable)
	})

	t.Run("missing bucket classified", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "no bucket"}).Once()

		storage := newStorage(t, client)
		_, err := storage.Put(context.Background(), "a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, assets.ErrBucketNotFound)
	})

	t.Run("context cancellation classified", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, context.Canceled).Once()

		storage := newStorage(t, client)
		_, err := storage.Put(context.Background(), "a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, assets.ErrOperationCanceled)
	})

	t.Run("unknown api error wrapped with code", func(t *testing.T) {
		t.Parallel()

		apiErr := &smithy.GenericAPIError{Code: "InternalError", Message: "boom"}
		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apiErr).Once()

		storage := newStorage(t, client)
		_, err := storage.Put(context.Background(), "a.png", []byte("x"), "image/png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "InternalError")
		assert.True(t, errors.As(err, new(smithy.APIError)))
	})
}
