package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/jsonfile/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDDBClient is an in-memory DynamoDB mock for testing.
type mockDDBClient struct {
	mu       sync.RWMutex
	items    map[string]map[string]types.AttributeValue // name -> item
	pageSize int
	scans    int
	err      error
}

func newMockDDBClient() *mockDDBClient {
	return &mockDDBClient{
		items:    make(map[string]map[string]types.AttributeValue),
		pageSize: 2,
	}
}

func keyOf(key map[string]types.AttributeValue) string {
	return key[attrName].(*types.AttributeValueMemberS).Value
}

func (m *mockDDBClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &dynamodb.GetItemOutput{Item: m.items[keyOf(params.Key)]}, nil
}

func (m *mockDDBClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[keyOf(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockDDBClient) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, keyOf(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// Scan pages through items in name order. The filter is evaluated the way
// DynamoDB evaluates begins_with on the name attribute.
func (m *mockDDBClient) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans++

	names := make([]string, 0, len(m.items))
	for name := range m.items {
		names = append(names, name)
	}
	sort.Strings(names)

	start := 0
	if params.ExclusiveStartKey != nil {
		last := keyOf(params.ExclusiveStartKey)
		start = sort.SearchStrings(names, last) + 1
	}
	end := min(start+m.pageSize, len(names))

	prefix := ""
	if p, ok := params.ExpressionAttributeValues[":p"]; ok {
		prefix = p.(*types.AttributeValueMemberS).Value
	}

	out := &dynamodb.ScanOutput{}
	for _, name := range names[start:end] {
		if strings.HasPrefix(name, prefix) {
			out.Items = append(out.Items, map[string]types.AttributeValue{
				attrName: &types.AttributeValueMemberS{Value: name},
			})
		}
	}
	if end < len(names) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			attrName: &types.AttributeValueMemberS{Value: names[end-1]},
		}
	}
	return out, nil
}

func TestStore_PutOpen(t *testing.T) {
	client := newMockDDBClient()
	store := NewStore(client, "blobs", WithPrefix("game/"))
	store.now = func() time.Time { return time.Unix(1700000000, 0) }
	ctx := context.Background()

	data := []byte(`{"name":"Ava","level":3}`)
	require.NoError(t, store.Put(ctx, "profile.json", data))

	item := client.items["game/profile.json"]
	require.NotNil(t, item)
	assert.Equal(t, "1700000000", item[attrUpdatedAt].(*types.AttributeValueMemberN).Value)

	got, err := blobstore.Get(ctx, store, "profile.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_EmptyBlob(t *testing.T) {
	store := NewStore(newMockDDBClient(), "blobs")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "empty.json", nil))

	blob, err := store.Open(ctx, "empty.json")
	require.NoError(t, err)
	assert.Equal(t, int64(0), blob.Size())
}

func TestStore_NotFound(t *testing.T) {
	store := NewStore(newMockDDBClient(), "blobs")

	_, err := store.Open(context.Background(), "missing.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_ClientError(t *testing.T) {
	client := newMockDDBClient()
	client.err = &types.ResourceNotFoundException{Message: aws.String("no table")}
	store := NewStore(client, "blobs")
	ctx := context.Background()

	_, err := store.Open(ctx, "profile.json")
	var rnf *types.ResourceNotFoundException
	assert.True(t, errors.As(err, &rnf))
	assert.NotErrorIs(t, err, blobstore.ErrNotFound)

	assert.Error(t, store.Put(ctx, "profile.json", []byte(`{}`)))
}

func TestStore_UnexpectedAttributeType(t *testing.T) {
	client := newMockDDBClient()
	client.items["bad.json"] = map[string]types.AttributeValue{
		attrName: &types.AttributeValueMemberS{Value: "bad.json"},
		attrData: &types.AttributeValueMemberS{Value: "not binary"},
	}
	store := NewStore(client, "blobs")

	_, err := store.Open(context.Background(), "bad.json")
	assert.Error(t, err)
}

func TestStore_ItemTooLarge(t *testing.T) {
	store := NewStore(newMockDDBClient(), "blobs")

	err := store.Put(context.Background(), "huge.json", make([]byte, MaxItemSize))
	assert.ErrorIs(t, err, ErrItemTooLarge)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(newMockDDBClient(), "blobs")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.json", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "a.json"))
	require.NoError(t, store.Delete(ctx, "a.json"))

	_, err := store.Open(ctx, "a.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_List(t *testing.T) {
	client := newMockDDBClient()
	ctx := context.Background()

	other := NewStore(client, "blobs", WithPrefix("other/"))
	require.NoError(t, other.Put(ctx, "x.json", []byte(`{}`)))

	store := NewStore(client, "blobs", WithPrefix("game/"))
	for i := range 5 {
		require.NoError(t, store.Put(ctx, fmt.Sprintf("levels/%d.json", i), []byte(`{}`)))
	}
	require.NoError(t, store.Put(ctx, "profile.json", []byte(`{}`)))

	names, err := store.List(ctx, "levels/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"levels/0.json", "levels/1.json", "levels/2.json", "levels/3.json", "levels/4.json",
	}, names)
	assert.Greater(t, client.scans, 1, "listing must follow pagination")

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.NotContains(t, all, "x.json")
}
