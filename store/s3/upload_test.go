package s3

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUploadClient mocks manager.UploadAPIClient. Only PutObject is
// exercised here; small bodies never reach the multipart path.
type MockUploadClient struct {
	mock.Mock
}

func (m *MockUploadClient) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockUploadClient) UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	args := m.Called(ctx, params)
	return nil, args.Error(1)
}

func (m *MockUploadClient) CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	args := m.Called(ctx, params)
	return nil, args.Error(1)
}

func (m *MockUploadClient) CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	args := m.Called(ctx, params)
	return nil, args.Error(1)
}

func (m *MockUploadClient) AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	args := m.Called(ctx, params)
	return nil, args.Error(1)
}

func TestUploader_Upload(t *testing.T) {
	mockClient := new(MockUploadClient)
	mockClient.On("PutObject", mock.Anything, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(input.Body)
		return *input.Bucket == "b" && *input.Key == "big/object" && bytes.Equal(body, []byte("streamed body"))
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	err := NewUploader(mockClient).Upload(context.Background(), "b", "big/object",
		bytes.NewReader([]byte("streamed body")))
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}
