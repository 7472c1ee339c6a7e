package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestSignedURL(t *testing.T) {
	store, err := New(context.Background(), Config{
		Region:          "us-east-1",
		Bucket:          "campus-media",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		Endpoint:        "http://localhost:9000",
		UsePathStyle:    true,
		PresignDuration: 5 * time.Minute,
	})
	require.NoError(t, err)

	key := "images/0b9f4f3e-6c1a-4a53-9a55-2f6d7e3c9b10.png"
	signed, err := store.SignedURL(context.Background(), key)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/campus-media/"+key), u.Path)
	assert.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"no such key", &types.NoSuchKey{}, true},
		{"wrapped not found", fmt.Errorf("head: %w", &types.NotFound{}), true},
		{"api code", &smithy.GenericAPIError{Code: "NoSuchKey"}, true},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
		{"plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotFound(tt.err))
		})
	}
}
