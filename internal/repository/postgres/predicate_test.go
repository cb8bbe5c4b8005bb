package postgres

import (
	"strings"
	"testing"

	"lucky-backoffice/internal/domain/estimation"

	"github.com/stretchr/testify/assert"
)

func TestPredicateEmpty(t *testing.T) {
	p := NewPredicate()
	assert.Equal(t, "", p.Clause())
	assert.Empty(t, p.Args())
}

func TestPredicateBindNumbering(t *testing.T) {
	p := NewPredicate()
	assert.Equal(t, "$1", p.Bind("a"))
	assert.Equal(t, "$2", p.Bind("b"))
	p.Where("x = $1")
	p.Where("y = $2")
	assert.Equal(t, " WHERE x = $1 AND y = $2", p.Clause())
	assert.Equal(t, []interface{}{"a", "b"}, p.Args())
}

func TestEstimationPredicateNoFilters(t *testing.T) {
	p := buildEstimationPredicate(estimation.ListFilters{})
	assert.Equal(t, "", p.Clause())
	assert.Empty(t, p.Args())
}

func TestEstimationPredicateAllSentinel(t *testing.T) {
	// "all" must behave exactly like an absent filter.
	p := buildEstimationPredicate(estimation.ListFilters{Status: "all", ProductType: "all"})
	assert.Equal(t, "", p.Clause())
	assert.Empty(t, p.Args())
}

func TestEstimationPredicateSearchReusesOneBinding(t *testing.T) {
	p := buildEstimationPredicate(estimation.ListFilters{Search: "เหรียญ"})

	assert.Len(t, p.Args(), 1)
	assert.Equal(t, "%เหรียญ%", p.Args()[0])
	assert.Equal(t, 5, strings.Count(p.Clause(), "$1"), "one placeholder per disjunct")
}

func TestEstimationPredicateInjectionStaysBound(t *testing.T) {
	term := "' OR '1'='1"
	p := buildEstimationPredicate(estimation.ListFilters{Search: term, Status: "x'; DROP TABLE price_estimations;--"})

	// The hostile input lands only in the bound args, never in the SQL text.
	assert.NotContains(t, p.Clause(), term)
	assert.NotContains(t, p.Clause(), "DROP TABLE")
	assert.Contains(t, p.Args(), "%"+term+"%")
	assert.Contains(t, p.Args(), "x'; DROP TABLE price_estimations;--")
}

func TestEstimationPredicateDateBoundsInclusive(t *testing.T) {
	p := buildEstimationPredicate(estimation.ListFilters{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})

	assert.Contains(t, p.Clause(), "pe.estimate_date >= $1")
	assert.Contains(t, p.Clause(), "pe.estimate_date <= $2")
	assert.Equal(t, []interface{}{"2026-01-01", "2026-01-31"}, p.Args())
}

func TestEstimationPredicateCombined(t *testing.T) {
	p := buildEstimationPredicate(estimation.ListFilters{
		Search:      "acme",
		Status:      string(estimation.StatusApproved),
		ProductType: "เหรียญรางวัล",
		StartDate:   "2026-01-01",
		EndDate:     "2026-12-31",
	})

	clause := p.Clause()
	assert.True(t, strings.HasPrefix(clause, " WHERE "))
	assert.Equal(t, 4, strings.Count(clause, " AND "))
	assert.Len(t, p.Args(), 5)
}
