package catalog

import (
	"context"
	"strings"

	"github.com/FelipePedraza/libreriaSoftware/internal/entity"
	"github.com/FelipePedraza/libreriaSoftware/internal/usecase"
)

// Filters are the optional search criteria. Absent filters are no-ops and
// present ones combine with AND.
type Filters struct {
	// Term is matched case-insensitively as a substring of title or author.
	// It is trimmed first; a term that is empty after trimming is absent.
	Term string
	// Genre is an exact match, ignoring case.
	Genre string
	// InStock retains only books with stock above zero when true. False means
	// no stock filtering, same as absent; the catalog has always treated the
	// two alike.
	InStock bool
}

// searchBooks runs the term filter in storage as a single title-or-author
// substring query, then refines the candidate set in memory for genre and
// stock. Result order follows storage iteration order.
func (s *Service) searchBooks(ctx context.Context, f Filters) ([]entity.Book, error) {
	var p usecase.SearchPredicate
	if term := strings.TrimSpace(f.Term); term != "" {
		p.TitleOrAuthorSubstring = term
	}
	books, err := s.books.Search(ctx, p)
	if err != nil {
		return nil, err
	}
	return refine(books, f), nil
}

// refine applies the genre and stock filters over the candidate set. Doing
// this in memory keeps the filters composable no matter what the storage
// query supports.
func refine(books []entity.Book, f Filters) []entity.Book {
	genre := strings.TrimSpace(f.Genre)
	out := make([]entity.Book, 0, len(books))
	for _, b := range books {
		if genre != "" && !strings.EqualFold(b.Genre, genre) {
			continue
		}
		if f.InStock && b.StockQuantity <= 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}
