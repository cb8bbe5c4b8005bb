// internal/repository/postgres/predicate.go
package postgres

import (
	"fmt"
	"strings"
)

// Predicate assembles a conjunctive WHERE clause from an open set of
// optional criteria. Values only ever enter the query through Bind, which
// hands back the $n placeholder to splice into the condition text; filter
// input never reaches the SQL string itself.
type Predicate struct {
	conds []string
	args  []interface{}
}

func NewPredicate() *Predicate {
	return &Predicate{}
}

// Bind registers v as the next bound parameter and returns its placeholder.
// The same placeholder may appear in several disjuncts of one condition.
func (p *Predicate) Bind(v interface{}) string {
	p.args = append(p.args, v)
	return fmt.Sprintf("$%d", len(p.args))
}

// Where appends one condition; all conditions are ANDed together.
func (p *Predicate) Where(cond string) {
	p.conds = append(p.conds, cond)
}

// Clause returns the assembled " WHERE ..." text, or the empty string when
// no condition was added so the query degrades to match-all.
func (p *Predicate) Clause() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// Args returns the bound values in placeholder order.
func (p *Predicate) Args() []interface{} {
	return p.args
}
