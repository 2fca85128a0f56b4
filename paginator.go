package gitlab

import "context"

// ListFunc fetches one page of records for a paginated endpoint. The
// paginator supplies the page and per-page parameters; the closure
// merges them into the endpoint's own options:
//
//	p := gitlab.NewPaginator(func(ctx context.Context, lo gitlab.ListOptions) ([]*gitlab.Project, error) {
//	    return client.ListProjects(ctx, &gitlab.ListProjectsOptions{
//	        ListOptions: lo,
//	        Membership:  gitlab.Ptr(true),
//	    })
//	}, 100)
type ListFunc[T any] func(ctx context.Context, opt ListOptions) ([]T, error)

// defaultPerPage matches the server's default page size.
const defaultPerPage = 20

// Paginator is a lazy, restartable, finite cursor over a paginated list
// endpoint. It walks pages by incrementing the page number until a page
// comes back with fewer than per-page records. Not safe for concurrent
// use.
type Paginator[T any] struct {
	fn      ListFunc[T]
	perPage int

	page int
	buf  []T
	done bool
}

// NewPaginator creates a paginator over fn fetching perPage records per
// page. perPage <= 0 uses the server default of 20.
func NewPaginator[T any](fn ListFunc[T], perPage int) *Paginator[T] {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return &Paginator[T]{fn: fn, perPage: perPage, page: 1}
}

// NextPage fetches and returns the next page of records. It returns an
// empty slice once the listing is exhausted.
func (p *Paginator[T]) NextPage(ctx context.Context) ([]T, error) {
	if p.done {
		return nil, nil
	}

	records, err := p.fn(ctx, ListOptions{Page: p.page, PerPage: p.perPage})
	if err != nil {
		return nil, err
	}
	p.page++
	if len(records) < p.perPage {
		p.done = true
	}
	return records, nil
}

// Next returns the next single record, fetching pages as needed. The
// second result is false once the listing is exhausted.
func (p *Paginator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for len(p.buf) == 0 {
		if p.done {
			return zero, false, nil
		}
		page, err := p.NextPage(ctx)
		if err != nil {
			return zero, false, err
		}
		p.buf = page
	}
	record := p.buf[0]
	p.buf = p.buf[1:]
	return record, true, nil
}

// All drains the remaining records into one slice.
func (p *Paginator[T]) All(ctx context.Context) ([]T, error) {
	var all []T
	all = append(all, p.buf...)
	p.buf = nil
	for !p.done {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
	return all, nil
}

// Reset rewinds the paginator to the first page.
func (p *Paginator[T]) Reset() {
	p.page = 1
	p.buf = nil
	p.done = false
}
