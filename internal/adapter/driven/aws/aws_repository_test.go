package aws

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateSharedConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "us-east-1")
}

func TestGetServiceClient_CachesPerProfile(t *testing.T) {
	isolateSharedConfig(t)
	repo := NewAWSRepository().(*AWSRepositoryImpl)
	ctx := context.Background()

	first, err := repo.getServiceClient(ctx, "", "s3")
	require.NoError(t, err)
	assert.IsType(t, &s3.Client{}, first)

	second, err := repo.getServiceClient(ctx, "", "s3")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Len(t, repo.cfgCache, 1)
}

func TestGetServiceClient_UnsupportedService(t *testing.T) {
	isolateSharedConfig(t)
	repo := NewAWSRepository().(*AWSRepositoryImpl)

	_, err := repo.getServiceClient(context.Background(), "", "ec2")
	assert.ErrorContains(t, err, "unsupported service: ec2")
}

func TestGetObject_UnknownProfile(t *testing.T) {
	isolateSharedConfig(t)
	repo := NewAWSRepository()

	_, err := repo.GetObject(context.Background(), "voyage-missing-profile", "fleet", "actual.csv")
	assert.ErrorContains(t, err, `failed to load AWS config for profile "voyage-missing-profile"`)
}
