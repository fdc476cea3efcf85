package repository

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"buscador_cep/pkg"
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAddressCacheTableName = "cep_lookups"
	defaultAddressCacheTTL       = 24 * time.Hour
)

type addressCacheItem struct {
	CEP          string `dynamodbav:"cep" json:"cep"`
	Status       string `dynamodbav:"status" json:"status"`
	PostalCode   string `dynamodbav:"postal_code,omitempty" json:"postal_code,omitempty"`
	Street       string `dynamodbav:"street,omitempty" json:"street,omitempty"`
	Complement   string `dynamodbav:"complement,omitempty" json:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	City         string `dynamodbav:"city,omitempty" json:"city,omitempty"`
	StateCode    string `dynamodbav:"state_code,omitempty" json:"state_code,omitempty"`
	CachedAt     string `dynamodbav:"cached_at" json:"cached_at"`
	ExpiresAt    int64  `dynamodbav:"expires_at" json:"expires_at"`
}

// DynamoAPI is the part of *dynamodb.Client the cache needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// AddressCacheDynamoRepository caches resolved lookups in DynamoDB.
//
// Table requirements:
//   - PK: cep (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so Get also checks expires_at.

type AddressCacheDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IAddressCacheRepository = (*AddressCacheDynamoRepository)(nil)

func NewAddressCacheDynamoRepository(ddb DynamoAPI, ttl time.Duration) *AddressCacheDynamoRepository {
	if ttl <= 0 {
		ttl = defaultAddressCacheTTL
	}
	return &AddressCacheDynamoRepository{
		ddb:       ddb,
		tableName: pkg.GetenvDefault("CEP_CACHE_TABLE", defaultAddressCacheTableName),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *AddressCacheDynamoRepository) Get(ctx context.Context, cep string) (entities.LookupResult, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cep": &types.AttributeValueMemberS{Value: cep},
		},
	})
	if err != nil {
		return entities.LookupResult{}, err
	}
	if len(out.Item) == 0 {
		return entities.LookupResult{}, nil
	}

	var it addressCacheItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LookupResult{}, err
	}
	if it.ExpiresAt <= r.now().Unix() {
		return entities.LookupResult{}, nil
	}
	return fromAddressCacheItem(it), nil
}

func (r *AddressCacheDynamoRepository) Put(ctx context.Context, cep string, result entities.LookupResult) error {
	it := toAddressCacheItem(cep, result, r.now().UTC(), r.ttl)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toAddressCacheItem(cep string, result entities.LookupResult, now time.Time, ttl time.Duration) addressCacheItem {
	it := addressCacheItem{
		CEP:       cep,
		Status:    string(result.Status),
		CachedAt:  now.Format(time.RFC3339Nano),
		ExpiresAt: now.Add(ttl).Unix(),
	}
	if result.IsFound() {
		it.PostalCode = result.Address.PostalCode
		it.Street = result.Address.Street
		it.Complement = result.Address.Complement
		it.Neighborhood = result.Address.Neighborhood
		it.City = result.Address.City
		it.StateCode = result.Address.StateCode
	}
	return it
}

func fromAddressCacheItem(it addressCacheItem) entities.LookupResult {
	switch entities.LookupStatus(it.Status) {
	case entities.LookupStatusFound:
		return entities.FoundResult(entities.Address{
			PostalCode:   it.PostalCode,
			Street:       it.Street,
			Complement:   it.Complement,
			Neighborhood: it.Neighborhood,
			City:         it.City,
			StateCode:    it.StateCode,
		})
	case entities.LookupStatusNotFound:
		return entities.NotFoundResult()
	default:
		return entities.LookupResult{}
	}
}

func parseTTL(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return def
}

// AddressCacheTTLFromEnv reads CEP_CACHE_TTL ("24h" or a number of hours).
func AddressCacheTTLFromEnv() time.Duration {
	return parseTTL(pkg.GetenvDefault("CEP_CACHE_TTL", ""), defaultAddressCacheTTL)
}
