package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTableAPI struct {
	describeErr error
	createErr   error
	created     []string
}

func (f *fakeTableAPI) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, *in.TableName)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureStorageTable(t *testing.T) {
	ctx := context.Background()

	t.Run("existing table", func(t *testing.T) {
		api := &fakeTableAPI{}
		if err := EnsureStorageTable(ctx, api, "site_storage"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(api.created) != 0 {
			t.Fatalf("expected no create call")
		}
	})

	t.Run("missing table is created", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: &types.ResourceNotFoundException{}}
		if err := EnsureStorageTable(ctx, api, "site_storage"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(api.created) != 1 || api.created[0] != "site_storage" {
			t.Fatalf("unexpected create calls %v", api.created)
		}
	})

	t.Run("describe failure", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: errors.New("throttled")}
		if err := EnsureStorageTable(ctx, api, "site_storage"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
