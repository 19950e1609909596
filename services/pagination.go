package services

import (
	"context"
	"encoding/base64"
	"strings"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/repository"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/goccy/go-json"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const cursorVersion = 1

type cursorPayload struct {
	Version int                  `json:"v"`
	After   string               `json:"after"`
	Order   repository.SortOrder `json:"order"`
}

func encodeCursor(after string, order repository.SortOrder) string {
	raw, _ := json.Marshal(cursorPayload{Version: cursorVersion, After: after, Order: order})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeCursor accepts only cursors this service issued for the same order.
func decodeCursor(cursor string, order repository.SortOrder) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", errors.Validation("invalid cursor")
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Version != cursorVersion || p.After == "" {
		return "", errors.Validation("invalid cursor")
	}
	if p.Order != order {
		return "", errors.Validation("cursor was issued for %s order", p.Order)
	}
	return p.After, nil
}

// pageQuery is a validated list request.
type pageQuery struct {
	limit int
	order repository.SortOrder
	after string
	term  string
}

func (s *Service) parsePage(req dto.PageRequest) (pageQuery, error) {
	q := pageQuery{limit: req.Limit, order: repository.Desc}
	switch strings.ToLower(strings.TrimSpace(req.Order)) {
	case "", string(repository.Desc):
	case string(repository.Asc):
		q.order = repository.Asc
	default:
		return q, errors.Validation("order must be asc or desc")
	}
	if q.limit <= 0 {
		q.limit = s.pageSize
	}
	if q.limit > s.maxPage {
		q.limit = s.maxPage
	}
	if req.Cursor != "" {
		after, err := decodeCursor(req.Cursor, q.order)
		if err != nil {
			return q, err
		}
		q.after = after
	}
	q.term = normalizeSearch(req.Search)
	return q, nil
}

// paginate reads one page of table, ordered by id, and maps rows through
// view. It fetches one extra row to know whether the sequence is done.
func paginate[T any, P record[T], V any](ctx context.Context, table repository.Table[T], index, value string, q pageQuery, filter func(T) bool, view func(T) V) (dto.Page[V], error) {
	rows, err := table.Scan(ctx, repository.Query[T]{
		Index:  index,
		Value:  value,
		Filter: filter,
		Order:  q.order,
		After:  q.after,
		Limit:  q.limit + 1,
	})
	if err != nil {
		return dto.Page[V]{}, err
	}
	page := dto.Page[V]{Items: make([]V, 0, min(len(rows), q.limit)), IsDone: len(rows) <= q.limit}
	if !page.IsDone {
		rows = rows[:q.limit]
		page.NextCursor = encodeCursor(rowID[T, P](rows[len(rows)-1]), q.order)
	}
	for _, row := range rows {
		page.Items = append(page.Items, view(row))
	}
	return page, nil
}

// identity is the view for entities listed as stored.
func identity[T any](row T) T { return row }

// normalizeSearch folds accents and case so "Café" matches "cafe".
func normalizeSearch(term string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(term)))
}

// searchFilter matches rows where any of fields contains term. Failing
// that, a row still matches when every word of term is contained in, or is a
// near miss of, some word of the row. An empty term matches everything.
func searchFilter[T any](term string, fields func(T) []string) func(T) bool {
	if term == "" {
		return nil
	}
	tokens := strings.Fields(term)
	return func(row T) bool {
		var words []string
		for _, f := range fields(row) {
			norm := normalizeSearch(f)
			if strings.Contains(norm, term) {
				return true
			}
			words = append(words, strings.Fields(norm)...)
		}
		return fuzzyMatch(tokens, words)
	}
}

// fuzzyCandidates is how many of the closest words are checked per token.
const fuzzyCandidates = 3

var editCost = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

func fuzzyMatch(tokens, words []string) bool {
	if len(words) == 0 {
		return false
	}
	var cm *closestmatch.ClosestMatch
	for _, tok := range tokens {
		if containedIn(tok, words) {
			continue
		}
		allowed := typoAllowance(tok)
		if allowed == 0 {
			return false
		}
		if cm == nil {
			cm = closestmatch.New(words, []int{2, 3})
		}
		if !nearMiss(tok, cm.ClosestN(tok, fuzzyCandidates), allowed) {
			return false
		}
	}
	return true
}

func containedIn(tok string, words []string) bool {
	for _, w := range words {
		if strings.Contains(w, tok) {
			return true
		}
	}
	return false
}

func nearMiss(tok string, candidates []string, allowed int) bool {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if levenshtein.DistanceForStrings([]rune(tok), []rune(c), editCost) <= allowed {
			return true
		}
	}
	return false
}

// typoAllowance is the edit distance tolerated for a search word. Words
// shorter than four runes must match exactly.
func typoAllowance(tok string) int {
	switch n := len([]rune(tok)); {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}
