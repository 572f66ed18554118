package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	objects map[string][]byte
	putErr  error
	lastPut *s3.PutObjectInput
}

func newFakeObjectAPI() *fakeObjectAPI {
	return &fakeObjectAPI{objects: make(map[string][]byte)}
}

func (f *fakeObjectAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.lastPut = in
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3DocumentRepository_GetMissing(t *testing.T) {
	repo := NewS3DocumentRepositoryWithClient(newFakeObjectAPI(), "budget", "")
	_, err := repo.Get(context.Background(), domain.DocumentKey)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestS3DocumentRepository_PutGet(t *testing.T) {
	api := newFakeObjectAPI()
	repo := NewS3DocumentRepositoryWithClient(api, "budget", "users/me")
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.DocumentKey, []byte(`{"v":1}`)))

	require.NotNil(t, api.lastPut)
	assert.Equal(t, "users/me/personal_budget_data.json", aws.ToString(api.lastPut.Key))
	assert.Equal(t, "application/json", aws.ToString(api.lastPut.ContentType))
	assert.Equal(t, int64(7), aws.ToInt64(api.lastPut.ContentLength))

	got, err := repo.Get(ctx, domain.DocumentKey)
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(got))
}

func TestS3DocumentRepository_PutError(t *testing.T) {
	api := newFakeObjectAPI()
	api.putErr = errors.New("access denied")
	repo := NewS3DocumentRepositoryWithClient(api, "budget", "")

	err := repo.Put(context.Background(), domain.DocumentKey, []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
