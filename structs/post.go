// Package structs defines the post models exchanged with the GraphQL backend.
package structs

// PostAuthor is the author block of a post.
type PostAuthor struct {
	Username string  `json:"username"`
	Fullname *string `json:"fullname"`
}

// Post is one row of the posts list.
// CreatedAt and UpdatedAt hold epoch milliseconds as strings.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    PostAuthor `json:"author"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// PostList is one page of posts. Page is 1-indexed.
type PostList struct {
	Items      []*Post `json:"items"`
	TotalItems int     `json:"totalItems"`
	Page       int     `json:"page"`
}

// ListPostsParams are the listPosts variables. A nil Page omits the variable.
type ListPostsParams struct {
	Limit int  `json:"limit" validate:"oneof=10 25 100"`
	Page  *int `json:"page,omitempty" validate:"omitempty,min=1"`
}

// Vars returns the GraphQL variables for the listing query.
func (p ListPostsParams) Vars() map[string]any {
	vars := map[string]any{"limit": p.Limit}
	if p.Page != nil {
		vars["page"] = *p.Page
	}
	return vars
}

// Clone returns a copy that shares no pointers with p.
func (p ListPostsParams) Clone() ListPostsParams {
	if p.Page != nil {
		page := *p.Page
		p.Page = &page
	}
	return p
}

// DeletePostParams are the deletePost variables.
type DeletePostParams struct {
	PostID string `json:"postId" validate:"required"`
}

// DeletePostResult acknowledges a deletion.
type DeletePostResult struct {
	ID string `json:"id"`
}
