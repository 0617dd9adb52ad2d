package s3

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/md-tools/revenue-atlas/pkg/adapters"
	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/models/store"
)

// ObjectGetter is the slice of the S3 API the store needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ProviderStore reads per-provider JSON extracts of the public billing
// dataset from an S3 bucket, one object per NPI under the configured prefix.
type ProviderStore struct {
	client ObjectGetter
	bucket string
	prefix string
}

// NewProviderStore builds a store over the default AWS config chain.
func NewProviderStore(ctx context.Context, bucket, prefix, region string) (*ProviderStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &ProviderStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// NewProviderStoreWithClient injects a client, for tests.
func NewProviderStoreWithClient(client ObjectGetter, bucket, prefix string) *ProviderStore {
	return &ProviderStore{client: client, bucket: bucket, prefix: prefix}
}

// FetchProvider returns domain.ErrNotFound when no extract exists for the id.
func (s *ProviderStore) FetchProvider(ctx context.Context, npi string) (*domain.ProviderRecord, error) {
	key := path.Join(s.prefix, npi+".json")

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting provider extract %s: %w", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading provider extract %s: %w", key, err)
	}

	var row store.ProviderRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("unmarshaling provider extract %s: %w", key, err)
	}

	rec := adapters.MapStoreProviderToDomain(row)
	return &rec, nil
}
