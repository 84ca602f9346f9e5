package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/dashboard/ctxutil"
	"github.com/ncobase/dashboard/data"
	"github.com/ncobase/dashboard/graphql"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/ncobase/dashboard/structs"
)

const listPostsField = "listPosts"

var (
	// ListPostsOp fetches one page of posts.
	ListPostsOp = graphql.Operation{
		Name:  "ListPosts",
		Field: listPostsField,
		Document: `query ListPosts($limit: Int, $page: Int) {
  listPosts(limit: $limit, page: $page) {
    items {
      id
      title
      author {
        username
        fullname
      }
      createdAt
      updatedAt
    }
    totalItems
    page
  }
}`,
	}

	// DeletePostOp deletes a post by id.
	DeletePostOp = graphql.Operation{
		Name:  "DeletePost",
		Field: "deletePost",
		Document: `mutation DeletePost($postId: ID!) {
  deletePost(postId: $postId) {
    id
  }
}`,
	}
)

// PostRepositoryInterface represents the post repository interface.
type PostRepositoryInterface interface {
	List(ctx context.Context, params *structs.ListPostsParams, policy graphql.FetchPolicy) (*structs.PostList, error)
	Delete(ctx context.Context, params *structs.DeletePostParams) (*structs.DeletePostResult, error)
}

// postRepository implements the PostRepositoryInterface.
type postRepository struct {
	gql      graphql.Executor
	cache    *graphql.QueryCache
	logger   *logger.Logger
	validate *validator.Validate
}

// NewPostRepository creates a new post repository.
func NewPostRepository(d *data.Data, l *logger.Logger) PostRepositoryInterface {
	if l == nil {
		l = logger.NewNop()
	}
	return &postRepository{gql: d.GraphQL, cache: d.Cache, logger: l, validate: validator.New()}
}

// List fetches a page of posts. CacheFirst answers from the session's cached
// listPosts entry when present.
func (r *postRepository) List(ctx context.Context, params *structs.ListPostsParams, policy graphql.FetchPolicy) (*structs.PostList, error) {
	if params == nil {
		return nil, errors.New("list params are required")
	}
	vars := params.Vars()
	scope := ctxutil.GetSessionID(ctx)

	if policy == graphql.CacheFirst && r.cache != nil {
		raw, ok, err := r.cache.Read(ctx, scope, listPostsField, vars)
		if err != nil {
			r.logger.Warnf(ctx, "read query cache: %v", err)
		}
		if ok {
			if list, err := decodePostList(raw); err == nil {
				r.logger.Debugf(ctx, "listPosts %v served from cache", vars)
				return list, nil
			}
			r.logger.Warnf(ctx, "discarding undecodable cache entry for listPosts")
		}
	}

	raw, err := r.gql.Execute(ctx, ListPostsOp, vars)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		merged, err := r.cache.Write(ctx, scope, listPostsField, vars, raw)
		if err != nil {
			r.logger.Warnf(ctx, "write query cache: %v", err)
		} else {
			raw = merged
		}
	}

	return decodePostList(raw)
}

// Delete removes a post. The cached listing is left in place; callers refetch.
func (r *postRepository) Delete(ctx context.Context, params *structs.DeletePostParams) (*structs.DeletePostResult, error) {
	if params == nil {
		return nil, errors.New("delete params are required")
	}
	if err := r.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid delete variables: %w", err)
	}

	raw, err := r.gql.Execute(ctx, DeletePostOp, map[string]any{"postId": params.PostID})
	if err != nil {
		return nil, err
	}

	var result structs.DeletePostResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode deletePost: %w", err)
	}
	return &result, nil
}

func decodePostList(raw json.RawMessage) (*structs.PostList, error) {
	var list structs.PostList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode listPosts: %w", err)
	}
	return &list, nil
}
