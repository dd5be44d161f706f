package searchview

import (
	"errors"
	"net/url"
	"testing"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWith(totalPages int, names ...string) *Result {
	advocates := make([]dto.AdvocateResponse, len(names))
	for i, name := range names {
		advocates[i] = dto.AdvocateResponse{ID: i + 1, FirstName: name}
	}
	return &Result{
		Advocates:  advocates,
		Pagination: response.Pagination{Page: 1, Limit: 10, Total: int64(len(names)), TotalPages: totalPages},
	}
}

func TestNewState(t *testing.T) {
	s := NewState(url.Values{"search": {"  anxiety "}, "page": {"3"}})
	assert.Equal(t, "anxiety", s.Search)
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, 1, s.TotalPages)

	s = NewState(url.Values{"page": {"abc"}})
	assert.Equal(t, "", s.Search)
	assert.Equal(t, 1, s.Page)

	s = NewState(url.Values{"page": {"-7"}})
	assert.Equal(t, 1, s.Page)
}

func TestReduceSearchChangedResetsPage(t *testing.T) {
	s := State{Search: "ann", Page: 4, TotalPages: 6}

	next, effect := Reduce(s, SearchChanged{Term: "anna"})
	assert.Equal(t, "anna", next.Search)
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, Effect{SyncURL: true, Fetch: true}, effect)

	_, effect = Reduce(next, SearchChanged{Term: "anna"})
	assert.Equal(t, Effect{}, effect)
}

func TestReduceReset(t *testing.T) {
	next, effect := Reduce(State{Search: "md", Page: 2, TotalPages: 3}, Reset{})
	assert.Equal(t, "", next.Search)
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, Effect{SyncURL: true, Fetch: true}, effect)

	_, effect = Reduce(next, Reset{})
	assert.Equal(t, Effect{}, effect)
}

func TestReducePageChangedStaysInBounds(t *testing.T) {
	s := State{Page: 1, TotalPages: 3}
	assert.False(t, s.CanPrev())
	assert.True(t, s.CanNext())

	next, effect := Reduce(s, PageChanged{Page: 0})
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, Effect{}, effect)

	next, effect = Reduce(s, PageChanged{Page: 2})
	assert.Equal(t, 2, next.Page)
	assert.Equal(t, Effect{SyncURL: true, Fetch: true}, effect)

	last := State{Page: 3, TotalPages: 3}
	assert.True(t, last.CanPrev())
	assert.False(t, last.CanNext())

	next, effect = Reduce(last, PageChanged{Page: 4})
	assert.Equal(t, 3, next.Page)
	assert.Equal(t, Effect{}, effect)
}

func TestReducePageChangedFromBeyondLastPage(t *testing.T) {
	// A deep link can land past the last page; prev brings it back in range.
	s := State{Page: 5, TotalPages: 3}
	assert.False(t, s.CanNext())

	next, effect := Reduce(s, PageChanged{Page: 4})
	assert.Equal(t, 3, next.Page)
	assert.True(t, effect.Fetch)
}

func TestReduceURLChanged(t *testing.T) {
	s := State{Search: "old", Page: 2, TotalPages: 4}

	next, effect := Reduce(s, URLChanged{Values: url.Values{"search": {"new"}, "page": {"3"}}})
	assert.Equal(t, "new", next.Search)
	assert.Equal(t, 3, next.Page)
	assert.Equal(t, Effect{Fetch: true}, effect)

	_, effect = Reduce(next, URLChanged{Values: url.Values{"search": {"new"}, "page": {"3"}}})
	assert.Equal(t, Effect{}, effect)
}

func TestReduceDropsStaleResults(t *testing.T) {
	s := State{Page: 1, TotalPages: 1}

	s, _ = Reduce(s, FetchStarted{})
	first := s.Seq
	s, _ = Reduce(s, FetchStarted{})
	second := s.Seq
	require.Greater(t, second, first)
	assert.True(t, s.Loading)

	s, _ = Reduce(s, FetchSucceeded{Seq: second, Result: resultWith(2, "Newest")})
	assert.False(t, s.Loading)
	require.Len(t, s.Advocates, 1)
	assert.Equal(t, "Newest", s.Advocates[0].FirstName)
	assert.Equal(t, 2, s.TotalPages)

	s, _ = Reduce(s, FetchSucceeded{Seq: first, Result: resultWith(7, "Stale", "Rows")})
	require.Len(t, s.Advocates, 1)
	assert.Equal(t, "Newest", s.Advocates[0].FirstName)
	assert.Equal(t, 2, s.TotalPages)

	s, _ = Reduce(s, FetchFailed{Seq: first, Err: errors.New("late failure")})
	assert.NoError(t, s.Err)
	assert.Len(t, s.Advocates, 1)
}

func TestReduceEditRetiresFetchInFlight(t *testing.T) {
	s, _ := Reduce(State{Search: "a", Page: 1, TotalPages: 1}, FetchStarted{})
	inFlight := s.Seq

	s, effect := Reduce(s, SearchChanged{Term: "ab"})
	assert.True(t, effect.Fetch)
	assert.Greater(t, s.Seq, inFlight)

	s, _ = Reduce(s, FetchSucceeded{Seq: inFlight, Result: resultWith(7, "ForTermA")})
	assert.Empty(t, s.Advocates)
	assert.Equal(t, 1, s.TotalPages)
	assert.True(t, s.Loading)

	for _, action := range []Action{Reset{}, URLChanged{Values: url.Values{"page": {"2"}}}} {
		before := s.Seq
		s, effect = Reduce(s, action)
		assert.True(t, effect.Fetch)
		assert.Greater(t, s.Seq, before)
	}
}

func TestReduceEmptyResultShowsOnePage(t *testing.T) {
	s, _ := Reduce(State{Page: 1, TotalPages: 4}, FetchStarted{})
	s, _ = Reduce(s, FetchSucceeded{Seq: s.Seq, Result: resultWith(0)})
	assert.Equal(t, 1, s.TotalPages)
	assert.Empty(t, s.Advocates)
	assert.False(t, s.CanNext())
}

func TestReduceFetchFailedClearsRows(t *testing.T) {
	s, _ := Reduce(State{Page: 1, TotalPages: 1}, FetchStarted{})
	s, _ = Reduce(s, FetchSucceeded{Seq: s.Seq, Result: resultWith(1, "Ada")})
	s, _ = Reduce(s, FetchStarted{})

	boom := errors.New("connection refused")
	s, _ = Reduce(s, FetchFailed{Seq: s.Seq, Err: boom})
	assert.False(t, s.Loading)
	assert.Empty(t, s.Advocates)
	assert.ErrorIs(t, s.Err, boom)
}

func TestQueryOmitsDefaults(t *testing.T) {
	assert.Equal(t, "", State{Page: 1}.Query().Encode())
	assert.Equal(t, "search=new+york", State{Search: " new york ", Page: 1}.Query().Encode())
	assert.Equal(t, "page=2&search=md", State{Search: "md", Page: 2}.Query().Encode())
	assert.Equal(t, "page=3", State{Page: 3}.Query().Encode())
}

func TestLink(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/", State{Page: 1}.Link("http://localhost:8080/"))
	assert.Equal(t, "http://localhost:8080/?page=2&search=phd", State{Search: "phd", Page: 2}.Link("http://localhost:8080/"))
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		raw    string
		search string
		page   string
	}{
		{raw: "http://localhost:8080/?search=md&page=2", search: "md", page: "2"},
		{raw: "?search=psychology", search: "psychology"},
		{raw: "search=chicago&page=4", search: "chicago", page: "4"},
		{raw: "http://localhost:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			values, err := ParseLink(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.search, values.Get("search"))
			assert.Equal(t, tt.page, values.Get("page"))
		})
	}
}
