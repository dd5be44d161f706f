package searchview

import (
	"net/url"
	"strconv"
	"strings"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/pkg/pagination"
)

// State is everything the search view renders. It only changes through
// Reduce, which keeps URL mirroring and fetch scheduling deterministic.
type State struct {
	Search     string // raw input; trimmed when mirrored or fetched
	Page       int
	Advocates  []dto.AdvocateResponse
	TotalPages int
	Loading    bool
	Seq        uint64 // results stamped with an older sequence are dropped
	Err        error
}

// Effect tells the caller what to do after a transition.
type Effect struct {
	SyncURL bool
	Fetch   bool
}

type Action interface {
	isAction()
}

// SearchChanged is an edit of the search input.
type SearchChanged struct{ Term string }

// Reset clears the search term.
type Reset struct{}

// PageChanged requests a page; prev/next are Page-1 and Page+1.
type PageChanged struct{ Page int }

// URLChanged re-initializes term and page from a link.
type URLChanged struct{ Values url.Values }

// FetchStarted issues the next sequence number.
type FetchStarted struct{}

type FetchSucceeded struct {
	Seq    uint64
	Result *Result
}

type FetchFailed struct {
	Seq uint64
	Err error
}

func (SearchChanged) isAction()  {}
func (Reset) isAction()          {}
func (PageChanged) isAction()    {}
func (URLChanged) isAction()     {}
func (FetchStarted) isAction()   {}
func (FetchSucceeded) isAction() {}
func (FetchFailed) isAction()    {}

// NewState reads the initial term and page from link query parameters.
func NewState(values url.Values) State {
	page := pagination.ParseInt(values.Get("page"))
	if page < 1 {
		page = 1
	}

	return State{
		Search:     strings.TrimSpace(values.Get("search")),
		Page:       page,
		TotalPages: 1,
	}
}

func Reduce(s State, action Action) (State, Effect) {
	switch a := action.(type) {
	case SearchChanged:
		if a.Term == s.Search && s.Page == 1 {
			return s, Effect{}
		}
		s.Search = a.Term
		s.Page = 1
		return schedule(s, true)

	case Reset:
		if s.Search == "" && s.Page == 1 {
			return s, Effect{}
		}
		s.Search = ""
		s.Page = 1
		return schedule(s, true)

	case PageChanged:
		page := a.Page
		if page > s.TotalPages {
			page = s.TotalPages
		}
		if page < 1 {
			page = 1
		}
		if page == s.Page {
			return s, Effect{}
		}
		s.Page = page
		return schedule(s, true)

	case URLChanged:
		next := NewState(a.Values)
		if next.Search == s.Search && next.Page == s.Page {
			return s, Effect{}
		}
		s.Search = next.Search
		s.Page = next.Page
		return schedule(s, false)

	case FetchStarted:
		s.Seq++
		s.Loading = true
		return s, Effect{}

	case FetchSucceeded:
		if a.Seq != s.Seq {
			return s, Effect{}
		}
		s.Loading = false
		s.Err = nil
		s.Advocates = nil
		s.TotalPages = 1
		if a.Result != nil {
			s.Advocates = a.Result.Advocates
			if a.Result.Pagination.TotalPages > 0 {
				s.TotalPages = a.Result.Pagination.TotalPages
			}
		}
		return s, Effect{}

	case FetchFailed:
		if a.Seq != s.Seq {
			return s, Effect{}
		}
		s.Loading = false
		s.Err = a.Err
		s.Advocates = nil
		return s, Effect{}
	}

	return s, Effect{}
}

// schedule retires the sequence number of any fetch in flight, so a result
// for the previous term or page can no longer be applied.
func schedule(s State, syncURL bool) (State, Effect) {
	s.Seq++
	return s, Effect{SyncURL: syncURL, Fetch: true}
}

func (s State) CanPrev() bool {
	return s.Page > 1
}

func (s State) CanNext() bool {
	return s.Page < s.TotalPages
}

// Query mirrors the state into link parameters, omitting defaults.
func (s State) Query() url.Values {
	values := url.Values{}
	if search := strings.TrimSpace(s.Search); search != "" {
		values.Set("search", search)
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	return values
}

// Link renders a shareable link rooted at base.
func (s State) Link(base string) string {
	query := s.Query().Encode()

	u, err := url.Parse(base)
	if err != nil {
		if query == "" {
			return base
		}
		return base + "?" + query
	}
	u.RawQuery = query
	return u.String()
}

// ParseLink accepts a full link, a "?search=..." suffix, or a bare query
// string.
func ParseLink(raw string) (url.Values, error) {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err == nil && (u.RawQuery != "" || !strings.Contains(raw, "=")) {
		return u.Query(), nil
	}

	return url.ParseQuery(strings.TrimPrefix(raw, "?"))
}
