package content

import (
	"reflect"
	"testing"
)

func TestSortByDate(t *testing.T) {
	projs := []Project{
		{Record: Record{Slug: "none1"}},
		{Record: Record{Slug: "mid"}, Date: "2021-06-01"},
		{Record: Record{Slug: "tie1"}, Date: "2022-01-01"},
		{Record: Record{Slug: "none2"}},
		{Record: Record{Slug: "tie2"}, Date: "2022-01-01"},
		{Record: Record{Slug: "old"}, Date: "2019-12-31T23:59:59Z"},
	}
	SortByDate(projs)
	var got []string
	for _, p := range projs {
		got = append(got, p.Slug)
	}
	expect := []string{"tie1", "tie2", "mid", "old", "none1", "none2"}
	if !reflect.DeepEqual(got, expect) {
		t.Errorf("Expected %v but got %v", expect, got)
	}
}

func TestSortByDateEmpty(t *testing.T) {
	var pubs []Publication
	SortByDate(pubs)
	if len(pubs) != 0 {
		t.Error("Expected no publications")
	}
}
