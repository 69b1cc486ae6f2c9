package services

import (
	"context"
	"sort"
	"strings"

	"hikebook/dto"
	"hikebook/utils"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const minSimilarity = 0.4

// chuẩn hóa chuỗi: bỏ dấu, chữ thường
func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// độ tương đồng levenshtein trong khoảng [0, 1]
func calculateSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1.0 - float64(distance)/float64(maxLen)
}

type searchCandidate struct {
	result   dto.SearchResult
	name     string
	keywords []string
}

// điểm tốt nhất của query so với tên và từng từ khóa
func scoreCandidate(query string, cand searchCandidate) float64 {
	if strings.Contains(cand.name, query) {
		return 1.0
	}
	best := calculateSimilarity(query, cand.name)
	for _, word := range strings.Fields(cand.name) {
		if sim := calculateSimilarity(query, word); sim > best {
			best = sim
		}
	}
	for _, kw := range cand.keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(kw, query) {
			if best < 0.8 {
				best = 0.8
			}
			continue
		}
		if sim := calculateSimilarity(query, kw); sim > best {
			best = sim
		}
	}
	return best
}

// Search tìm paket và basecamp gần đúng theo tên, độ khó và vị trí
func (s *CatalogService) Search(ctx context.Context, query string) ([]dto.SearchResult, error) {
	q := normalizeInput(query)
	if q == "" {
		return []dto.SearchResult{}, nil
	}

	packages, err := s.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	basecamps, err := s.ListBasecamps(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]searchCandidate, 0, len(packages)+len(basecamps))
	for _, p := range packages {
		candidates = append(candidates, searchCandidate{
			result: dto.SearchResult{
				Kind:           "package",
				ID:             p.ID,
				Name:           p.Name,
				Detail:         p.Duration + " · " + p.Difficulty,
				Price:          p.Price,
				PriceFormatted: utils.FormatRupiah(p.Price),
			},
			name:     normalizeInput(p.Name),
			keywords: []string{normalizeInput(p.Difficulty), normalizeInput(p.Duration)},
		})
	}
	for _, b := range basecamps {
		candidates = append(candidates, searchCandidate{
			result: dto.SearchResult{
				Kind:           "basecamp",
				ID:             b.ID,
				Name:           b.Name,
				Detail:         b.Location,
				Price:          b.Price,
				PriceFormatted: utils.FormatRupiah(b.Price),
			},
			name:     normalizeInput(b.Name),
			keywords: []string{normalizeInput(b.Location)},
		})
	}
	if len(candidates) == 0 {
		return []dto.SearchResult{}, nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}
	closest := closestmatch.New(names, []int{2, 3}).Closest(q)

	results := make([]dto.SearchResult, 0)
	for _, cand := range candidates {
		score := scoreCandidate(q, cand)
		if score < minSimilarity {
			continue
		}
		if cand.name == closest && score < 1.0 {
			score += 0.1
		}
		cand.result.Score = score
		results = append(results, cand.result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}
