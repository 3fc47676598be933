package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/jsonfile/blobstore"
)

const (
	attrName      = "name"
	attrData      = "data"
	attrUpdatedAt = "updated_at"

	// MaxItemSize is the DynamoDB item size limit.
	MaxItemSize = 400 << 10

	// itemOverhead leaves room for the key and bookkeeping attributes.
	itemOverhead = 1 << 10
)

// ErrItemTooLarge is returned by Put for blobs that do not fit in one item.
var ErrItemTooLarge = errors.New("dynamodb: blob exceeds item size limit")

// Client is the subset of the DynamoDB API used by Store.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix prepends prefix to every blob name.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithConsistentRead enables strongly consistent reads in Open.
func WithConsistentRead(enabled bool) Option {
	return func(s *Store) {
		s.consistentRead = enabled
	}
}

// Store implements blobstore.BlobStore on a DynamoDB table.
type Store struct {
	client         Client
	table          string
	prefix         string
	consistentRead bool
	now            func() time.Time
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore creates a Store over table.
func NewStore(client Client, table string, optFns ...Option) *Store {
	s := &Store{
		client: client,
		table:  table,
		now:    time.Now,
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

func (s *Store) key(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrName: &types.AttributeValueMemberS{Value: s.prefix + name},
	}
}

// Open fetches the item and returns its content as an in-memory blob.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            s.key(name),
		ConsistentRead: aws.Bool(s.consistentRead),
	})
	if err != nil {
		var rnf *types.ResourceNotFoundException
		if errors.As(err, &rnf) {
			return nil, fmt.Errorf("dynamodb: table %s: %w", s.table, err)
		}
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, blobstore.ErrNotFound
	}

	var data []byte
	switch v := out.Item[attrData].(type) {
	case *types.AttributeValueMemberB:
		data = v.Value
	case nil:
		// Empty blobs are stored without a data attribute.
	default:
		return nil, fmt.Errorf("dynamodb: item %q: unexpected %s attribute type %T", name, attrData, v)
	}

	return &itemBlob{data: data}, nil
}

// Put stores data as a single item, replacing any previous one.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if len(data)+len(s.prefix)+len(name) > MaxItemSize-itemOverhead {
		return fmt.Errorf("%w: %s is %d bytes", ErrItemTooLarge, name, len(data))
	}

	item := s.key(name)
	item[attrUpdatedAt] = &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now().Unix(), 10)}
	if len(data) > 0 {
		item[attrData] = &types.AttributeValueMemberB{Value: data}
	}

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return err
}

// Delete removes the item. Deleting a missing item succeeds.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(name),
	})
	return err
}

// List scans the table for names below prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	full := s.prefix + prefix

	input := &dynamodb.ScanInput{
		TableName:                aws.String(s.table),
		ProjectionExpression:     aws.String("#n"),
		ExpressionAttributeNames: map[string]string{"#n": attrName},
	}
	if full != "" {
		input.FilterExpression = aws.String("begins_with(#n, :p)")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: full},
		}
	}

	names := []string{}
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			v, ok := item[attrName].(*types.AttributeValueMemberS)
			if !ok || !strings.HasPrefix(v.Value, full) {
				continue
			}
			names = append(names, strings.TrimPrefix(v.Value, s.prefix))
		}
	}
	sort.Strings(names)
	return names, nil
}

// itemBlob implements blobstore.Blob and blobstore.Mappable.
type itemBlob struct {
	data []byte
}

func (b *itemBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *itemBlob) Size() int64 {
	return int64(len(b.data))
}

func (b *itemBlob) Bytes() ([]byte, error) {
	return b.data, nil
}

func (b *itemBlob) Close() error {
	return nil
}
