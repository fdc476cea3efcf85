package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"buscador_cep/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
	table  string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.table = aws.ToString(in.TableName)
	key := in.Key["cep"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.table = aws.ToString(in.TableName)
	key := in.Item["cep"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestAddressCacheDynamoRepository_RoundTrip(t *testing.T) {
	t.Setenv("CEP_CACHE_TABLE", "")
	ddb := newFakeDynamo()
	repo := NewAddressCacheDynamoRepository(ddb, time.Hour)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	addr := entities.Address{PostalCode: "01001-000", Street: "Praça da Sé", Neighborhood: "Sé", City: "São Paulo", StateCode: "SP"}
	if err := repo.Put(context.Background(), "01001000", entities.FoundResult(addr)); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	if err := repo.Put(context.Background(), "00000000", entities.NotFoundResult()); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	if ddb.table != defaultAddressCacheTableName {
		t.Fatalf("expected default table, got %q", ddb.table)
	}

	got, err := repo.Get(context.Background(), "01001000")
	if err != nil || !got.IsFound() || got.Address != addr {
		t.Fatalf("unexpected cached result: %+v %v", got, err)
	}

	got, err = repo.Get(context.Background(), "00000000")
	if err != nil || got.Status != entities.LookupStatusNotFound {
		t.Fatalf("expected cached not_found, got %+v %v", got, err)
	}

	got, err = repo.Get(context.Background(), "20040002")
	if err != nil || got.Status != "" {
		t.Fatalf("expected miss, got %+v %v", got, err)
	}

	now = now.Add(2 * time.Hour)
	got, err = repo.Get(context.Background(), "01001000")
	if err != nil || got.Status != "" {
		t.Fatalf("expected expired entry to miss, got %+v %v", got, err)
	}
}

func TestAddressCacheDynamoRepository_GetError(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.getErr = errors.New("throttled")
	repo := NewAddressCacheDynamoRepository(ddb, 0)

	if _, err := repo.Get(context.Background(), "01001000"); err == nil {
		t.Fatalf("expected error")
	}
	if repo.ttl != defaultAddressCacheTTL {
		t.Fatalf("expected default ttl, got %s", repo.ttl)
	}
}

func TestParseTTL(t *testing.T) {
	cases := map[string]time.Duration{
		"":     time.Hour,
		"30m":  30 * time.Minute,
		"12":   12 * time.Hour,
		"-1h":  time.Hour,
		"junk": time.Hour,
	}
	for in, want := range cases {
		if got := parseTTL(in, time.Hour); got != want {
			t.Fatalf("parseTTL(%q) = %s, want %s", in, got, want)
		}
	}
}
