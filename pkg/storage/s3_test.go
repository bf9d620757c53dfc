package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockObjectAPI) HeadObject(ctx context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.HeadObjectOutput)
	return out, args.Error(1)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		store, err := New(Config{
			Bucket:    "test-bucket",
			AccessKey: "test-access-key",
			SecretKey: "test-secret-key",
		})
		require.NoError(t, err)
		require.NotNil(t, store.api)
		require.Equal(t, "test-bucket", store.bucket)
		require.Equal(t, int64(DefaultMaxObjectSize), store.MaxObjectSize())
	})

	t.Run("custom endpoint", func(t *testing.T) {
		t.Parallel()

		store, err := New(Config{
			Bucket:        "test-bucket",
			AccessKey:     "test-access-key",
			SecretKey:     "test-secret-key",
			Endpoint:      "http://localhost:9000",
			PathStyle:     true,
			MaxObjectSize: 1024,
		})
		require.NoError(t, err)
		require.Equal(t, int64(1024), store.MaxObjectSize())
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		store, err := New(Config{Bucket: "only-bucket"})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, store)
	})
}

func TestS3Storage_Get(t *testing.T) {
	t.Parallel()

	api := &mockObjectAPI{}
	api.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.Key) == "templates/welcome.md"
	})).Return(&s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader("# Hello")),
		ContentType:   aws.String("text/markdown"),
		ContentLength: aws.Int64(7),
	}, nil)

	store := NewWithAPI(api, "bucket", 0)
	obj, body, err := store.Get(context.Background(), "templates/welcome.md")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, "# Hello", string(data))
	require.Equal(t, &Object{Key: "templates/welcome.md", ContentType: "text/markdown", Size: 7}, obj)
	api.AssertExpectations(t)
}

func TestS3Storage_Head(t *testing.T) {
	t.Parallel()

	api := &mockObjectAPI{}
	api.On("HeadObject", mock.Anything, mock.Anything).Return(&s3.HeadObjectOutput{
		ContentType:   aws.String("application/pdf"),
		ContentLength: aws.Int64(2048),
	}, nil)

	obj, err := NewWithAPI(api, "bucket", 0).Head(context.Background(), "a.pdf")
	require.NoError(t, err)
	require.Equal(t, "application/pdf", obj.ContentType)
	require.Equal(t, int64(2048), obj.Size)
}

func TestS3Storage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "no such key code",
			err:      &smithy.GenericAPIError{Code: "NoSuchKey"},
			expected: ErrNotFound,
		},
		{
			name:     "typed no such key",
			err:      &types.NoSuchKey{},
			expected: ErrNotFound,
		},
		{
			name:     "access denied",
			err:      &smithy.GenericAPIError{Code: "AccessDenied"},
			expected: ErrAccessDenied,
		},
		{
			name:     "other failure",
			err:      errors.New("connection reset"),
			expected: ErrReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := &mockObjectAPI{}
			api.On("GetObject", mock.Anything, mock.Anything).Return(nil, tt.err)

			_, _, err := NewWithAPI(api, "bucket", 0).Get(context.Background(), "missing")
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestWrapS3Error_HeadFallback(t *testing.T) {
	t.Parallel()

	api := &mockObjectAPI{}
	api.On("HeadObject", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewWithAPI(api, "bucket", 0).Head(context.Background(), "x")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "boom")
}
