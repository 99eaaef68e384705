package shared

import (
	"net/http"
	"strconv"
	"strings"
)

// ListFilters represents standard list page filters
type ListFilters struct {
	Page     int
	Limit    int
	Search   string
	SortBy   string
	SortDir  string
	IsActive *bool

	// Entity specific filters
	CategoryID *int64
}

// FiltersFromQuery reads page, limit, search, sort, dir and is_active.
func FiltersFromQuery(r *http.Request) ListFilters {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = DefaultPage
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	filters := ListFilters{
		Page:    page,
		Limit:   limit,
		Search:  strings.TrimSpace(q.Get("search")),
		SortBy:  q.Get("sort"),
		SortDir: strings.ToLower(q.Get("dir")),
	}
	if raw := q.Get("is_active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.IsActive = &active
		}
	}
	if raw := q.Get("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filters.CategoryID = &id
		}
	}
	return filters
}

// Offset returns the row offset for the current page.
func (f ListFilters) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// Direction returns "ASC" or "DESC".
func (f ListFilters) Direction() string {
	if f.SortDir == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// OrderBy resolves SortBy against an allow-list of columns, falling back to
// fallback.
func (f ListFilters) OrderBy(allowed map[string]string, fallback string) string {
	column, ok := allowed[f.SortBy]
	if !ok {
		column = fallback
	}
	return column + " " + f.Direction()
}

// Where accumulates AND-ed predicates with positional arguments. A "?" in a
// predicate is replaced with the next placeholder.
type Where struct {
	clauses []string
	args    []any
}

// Add appends a predicate. Every "?" binds the same argument.
func (w *Where) Add(predicate string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.ReplaceAll(predicate, "?", "$"+strconv.Itoa(len(w.args))))
}

// SQL renders the WHERE clause, or "" when empty.
func (w *Where) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// Args returns the bound arguments.
func (w *Where) Args() []any {
	return w.args
}

// Page appends LIMIT/OFFSET placeholders and returns the clause and full
// argument list.
func (w *Where) Page(f ListFilters) (string, []any) {
	args := append(append([]any{}, w.args...), f.Limit, f.Offset())
	n := len(w.args)
	return " LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2), args
}
