package archive

import (
	"context"
	"errors"
	"io"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPutter struct {
	mock.Mock
}

func (m *mockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func TestNewS3Archiver_Validation(t *testing.T) {
	_, err := NewS3Archiver(nil, "bucket", "")
	assert.Error(t, err)

	_, err = NewS3Archiver(new(mockPutter), "", "")
	assert.Error(t, err)
}

func TestS3Archiver_Archive(t *testing.T) {
	ctx := context.Background()
	putter := new(mockPutter)
	var body []byte
	putter.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return awssdk.ToString(in.Bucket) == "backups" &&
			awssdk.ToString(in.Key) == "phone/wakestate-backup.json" &&
			awssdk.ToString(in.ContentType) == "application/json"
	})).Run(func(args mock.Arguments) {
		body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
	}).Return(&s3.PutObjectOutput{}, nil)

	archiver, err := NewS3Archiver(putter, "backups", "/phone/")
	require.NoError(t, err)

	key, err := archiver.Archive(ctx, "wakestate-backup.json", []byte(`{"version":1}`))
	require.NoError(t, err)
	assert.Equal(t, "phone/wakestate-backup.json", key)
	assert.JSONEq(t, `{"version":1}`, string(body))
	putter.AssertExpectations(t)
}

func TestS3Archiver_ArchiveError(t *testing.T) {
	ctx := context.Background()
	putter := new(mockPutter)
	putter.On("PutObject", ctx, mock.Anything).Return(nil, errors.New("access denied"))

	archiver, err := NewS3Archiver(putter, "backups", "")
	require.NoError(t, err)

	_, err = archiver.Archive(ctx, "x.json", []byte("{}"))
	assert.ErrorContains(t, err, "access denied")
	assert.ErrorContains(t, err, "s3://backups/x.json")
}
