package structs

import "testing"

func TestListPostsParamsVars(t *testing.T) {
	p := ListPostsParams{Limit: 25}
	vars := p.Vars()
	if len(vars) != 1 || vars["limit"] != 25 {
		t.Fatalf("expected only limit, got %v", vars)
	}
	if _, ok := vars["page"]; ok {
		t.Error("nil page must be omitted")
	}

	page := 2
	p.Page = &page
	vars = p.Vars()
	if vars["limit"] != 25 || vars["page"] != 2 {
		t.Errorf("unexpected vars %v", vars)
	}
}

func TestListPostsParamsClone(t *testing.T) {
	page := 3
	p := ListPostsParams{Limit: 10, Page: &page}
	c := p.Clone()
	page = 7
	if c.Page == nil || *c.Page != 3 {
		t.Errorf("clone shares page pointer: %v", c.Page)
	}
}
