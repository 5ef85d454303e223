package facades

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeS3 struct {
	objects map[string][]byte
	fail    bool

	puts    []string
	deletes []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail {
		return nil, errors.New("put failed")
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	f.puts = append(f.puts, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.fail {
		return nil, errors.New("delete failed")
	}
	delete(f.objects, *params.Key)
	f.deletes = append(f.deletes, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestMediaFacadeRoundTrip(t *testing.T) {
	client := newFakeS3()
	facade := NewMediaFacade(client, "recipes")
	ctx := context.Background()

	err := facade.Upload(ctx, "123_cake.png", strings.NewReader("png-bytes"), "image/png")
	assert.NoError(t, err)
	assert.Equal(t, []string{"123_cake.png"}, client.puts)

	body, err := facade.Download(ctx, "123_cake.png")
	assert.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	assert.NoError(t, facade.Delete(ctx, "123_cake.png"))
	assert.Equal(t, []string{"123_cake.png"}, client.deletes)

	_, err = facade.Download(ctx, "123_cake.png")
	assert.Error(t, err)
}

func TestMediaFacadeUploadFailure(t *testing.T) {
	client := newFakeS3()
	client.fail = true
	facade := NewMediaFacade(client, "recipes")

	err := facade.Upload(context.Background(), "123_cake.png", strings.NewReader("x"), "image/png")
	assert.Error(t, err)
}

func TestStorageKey(t *testing.T) {
	key := StorageKey("cake.png")
	assert.True(t, strings.HasSuffix(key, "_cake.png"))

	other := StorageKey("cake.png")
	assert.NotEqual(t, key, other)
}
