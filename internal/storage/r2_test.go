package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	putErr  error
	delErr  error
}

func (m *mockS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.puts = append(m.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.delErr != nil {
		return nil, m.delErr
	}
	m.deletes = append(m.deletes, in)
	return &s3.DeleteObjectOutput{}, nil
}

func writeArtifact(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))
	return path
}

func TestStore_UploadsWithMetadata(t *testing.T) {
	api := &mockS3{}
	store := newR2StoreWithAPI(api, "resumes", "https://cdn.example.com", nil)

	obj, err := store.Store(context.Background(), writeArtifact(t, "jane_20240315_093045.pdf"), "application/pdf")
	require.NoError(t, err)
	require.Len(t, api.puts, 1)

	put := api.puts[0]
	require.Equal(t, "resumes", *put.Bucket)
	require.Equal(t, "application/pdf", *put.ContentType)
	require.Equal(t, "max-age=31536000", *put.CacheControl)
	require.Equal(t, "jane_20240315_093045.pdf", put.Metadata["original-filename"])

	require.Equal(t, *put.Key, obj.Key)
	require.Equal(t, "https://cdn.example.com/"+obj.Key, obj.URL)
}

func TestStore_KeyIsFreshUUID(t *testing.T) {
	api := &mockS3{}
	store := newR2StoreWithAPI(api, "resumes", "https://cdn.example.com", nil)
	path := writeArtifact(t, "resume.pdf")

	first, err := store.Store(context.Background(), path, "")
	require.NoError(t, err)
	second, err := store.Store(context.Background(), path, "")
	require.NoError(t, err)

	require.NotEqual(t, first.Key, second.Key)
	for _, obj := range []Object{first, second} {
		require.True(t, strings.HasSuffix(obj.Key, ".pdf"), "key %q should keep the extension", obj.Key)
		_, err := uuid.Parse(strings.TrimSuffix(obj.Key, ".pdf"))
		require.NoError(t, err, "key %q should be a uuid", obj.Key)
	}
}

func TestStore_DefaultsContentType(t *testing.T) {
	api := &mockS3{}
	store := newR2StoreWithAPI(api, "resumes", "https://cdn.example.com", nil)

	_, err := store.Store(context.Background(), writeArtifact(t, "resume.pdf"), "")
	require.NoError(t, err)
	require.Equal(t, "application/pdf", *api.puts[0].ContentType)
}

func TestStore_TrimsPublicURL(t *testing.T) {
	api := &mockS3{}
	store := newR2StoreWithAPI(api, "resumes", "https://cdn.example.com/", nil)

	obj, err := store.Store(context.Background(), writeArtifact(t, "resume.pdf"), "")
	require.NoError(t, err)
	require.False(t, strings.Contains(obj.URL, "//"+obj.Key), "no double slash in %q", obj.URL)
	require.Equal(t, "https://cdn.example.com/"+obj.Key, obj.URL)
}

func TestStore_MissingLocalFile(t *testing.T) {
	store := newR2StoreWithAPI(&mockS3{}, "resumes", "https://cdn.example.com", nil)

	_, err := store.Store(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"), "")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	api := &mockS3{}
	store := newR2StoreWithAPI(api, "resumes", "https://cdn.example.com", nil)

	ok, err := store.Delete(context.Background(), "abc.pdf")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, api.deletes, 1)
	require.Equal(t, "abc.pdf", *api.deletes[0].Key)

	_, err = store.Delete(context.Background(), "   ")
	require.Error(t, err)
}
