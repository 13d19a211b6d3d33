package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	sc "github.com/vagali/vagali/internal/server/config"
)

func newMediaService() *MediaService {
	return NewMediaService(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "avatars",
	})
}

func TestAvatarStorageKey(t *testing.T) {
	k1 := avatarStorageKey("user-1")
	k2 := avatarStorageKey("user-1")

	if !strings.HasPrefix(k1, "avatars/user-1/") {
		t.Fatalf("unexpected key %q", k1)
	}
	if k1 == k2 {
		t.Fatalf("keys must be unique, got %q twice", k1)
	}
}

func TestAvatarUploadURL_ErrorFromClientFactory(t *testing.T) {
	svc := newMediaService()

	orig := loadDefaultAWSConfig
	defer func() { loadDefaultAWSConfig = orig }()
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, _, err := svc.AvatarUploadURL(context.Background(), "user-1")
	if err == nil || err.Error() != "load-fail" {
		t.Fatalf("want load-fail, got %v", err)
	}
}

func TestAvatarUploadURL_Success(t *testing.T) {
	svc := newMediaService()

	key, url, err := svc.AvatarUploadURL(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("AvatarUploadURL error: %v", err)
	}
	if !strings.HasPrefix(key, "avatars/user-1/") {
		t.Fatalf("unexpected key %q", key)
	}
	if !strings.Contains(url, "X-Amz-Signature") {
		t.Fatalf("expected presigned url, got %q", url)
	}
}
