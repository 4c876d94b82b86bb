package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcgmarket/marketplace/marketplace"
)

type fakeObjects struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
	err     error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, _ := io.ReadAll(in.Body)
	f.puts[*in.Key] = data
	f.types[*in.Key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func testStore(client objectAPI) *BlobStore {
	return newBlobStore(client, marketplace.StorageConfig{
		Bucket:          "market",
		Region:          "eu-west-1",
		PublicURL:       "https://cdn.example.com/",
		DefaultImageURL: "https://cdn.example.com/static/default.jpg",
	})
}

func TestBlobStore_Upload(t *testing.T) {
	objects := newFakeObjects()
	store := testStore(objects)

	url, err := store.Upload(context.Background(), "card-images", []byte("jpeg"), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/card-images/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg"), objects.puts[key])
	assert.Equal(t, "image/jpeg", objects.types[key])

	other, err := store.Upload(context.Background(), "card-images", []byte("jpeg"), "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, url, other)
}

func TestBlobStore_UploadError(t *testing.T) {
	objects := newFakeObjects()
	objects.err = errors.New("access denied")

	_, err := testStore(objects).Upload(context.Background(), "deck-images", []byte("x"), "")
	assert.ErrorContains(t, err, "access denied")
}

func TestBlobStore_Delete(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantKey string
	}{
		{name: "own object", url: "https://cdn.example.com/deck-images/a.jpg", wantKey: "deck-images/a.jpg"},
		{name: "escaped and query", url: "https://cdn.example.com/card-images/a%20b.jpg?v=2", wantKey: "card-images/a b.jpg"},
		{name: "default image", url: "https://cdn.example.com/static/default.jpg"},
		{name: "foreign url", url: "https://elsewhere.example.com/card-images/a.jpg"},
		{name: "empty", url: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects := newFakeObjects()
			require.NoError(t, testStore(objects).Delete(context.Background(), tt.url))
			if tt.wantKey == "" {
				assert.Empty(t, objects.deleted)
				return
			}
			assert.Equal(t, []string{tt.wantKey}, objects.deleted)
		})
	}
}

func TestNewBlobStore_DefaultPublicURL(t *testing.T) {
	store := newBlobStore(newFakeObjects(), marketplace.StorageConfig{Bucket: "market", Region: "us-east-1"})
	key, ok := store.KeyFromURL("https://market.s3.us-east-1.amazonaws.com/card-images/x.jpg")
	require.True(t, ok)
	assert.Equal(t, "card-images/x.jpg", key)
}
