// Package store provides the query machinery shared by every entity store.
package store

import "fmt"

// Option applies a modification to a Query.
type Option func(Query) Query

// Query holds conditions, ordering, and pagination for store lookups.
type Query struct {
	conditions []Condition
	orders     []Order
	limit      int
	offset     int
}

// Build creates a Query from a set of options.
func Build(options ...Option) Query {
	q := Query{}
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns the query conditions.
func (q Query) Conditions() []Condition {
	result := make([]Condition, len(q.conditions))
	copy(result, q.conditions)
	return result
}

// Orders returns the query ordering specifications.
func (q Query) Orders() []Order {
	result := make([]Order, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit (0 means no limit).
func (q Query) LimitValue() int {
	return q.limit
}

// OffsetValue returns the offset.
func (q Query) OffsetValue() int {
	return q.offset
}

// Op is the comparison operator of a Condition.
type Op int

// Op values.
const (
	OpEqual Op = iota
	OpIn
	OpLessThan
	OpGreaterThan
	OpIsNull
	OpIsNotNull
)

// String returns the SQL representation of the operator.
func (o Op) String() string {
	switch o {
	case OpIn:
		return "IN"
	case OpLessThan:
		return "<"
	case OpGreaterThan:
		return ">"
	case OpIsNull:
		return "IS NULL"
	case OpIsNotNull:
		return "IS NOT NULL"
	default:
		return "="
	}
}

// Condition represents a single query condition.
type Condition struct {
	field string
	op    Op
	value any
}

// Field returns the condition field name.
func (c Condition) Field() string { return c.field }

// Operator returns the condition operator.
func (c Condition) Operator() Op { return c.op }

// Value returns the condition value.
func (c Condition) Value() any { return c.value }

// String returns a readable representation.
func (c Condition) String() string {
	switch c.op {
	case OpIsNull, OpIsNotNull:
		return fmt.Sprintf("%s %s", c.field, c.op)
	default:
		return fmt.Sprintf("%s %s %v", c.field, c.op, c.value)
	}
}

// Order represents a sort specification.
type Order struct {
	field     string
	ascending bool
}

// Field returns the order field name.
func (o Order) Field() string { return o.field }

// Ascending returns true for ASC, false for DESC.
func (o Order) Ascending() bool { return o.ascending }

// --- Generic options reused across all stores ---

// WithCondition adds a field = value equality condition.
// Domain packages use this to define their own typed options.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: value})
		return q
	}
}

// WithConditionIn adds a field IN (values) condition.
func WithConditionIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpIn, value: values})
		return q
	}
}

// WithBefore adds a field < value condition.
func WithBefore(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpLessThan, value: value})
		return q
	}
}

// WithAfter adds a field > value condition.
func WithAfter(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpGreaterThan, value: value})
		return q
	}
}

// WithNull adds a field IS NULL condition.
func WithNull(field string) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpIsNull})
		return q
	}
}

// WithNotNull adds a field IS NOT NULL condition.
func WithNotNull(field string) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpIsNotNull})
		return q
	}
}

// WithOrderAsc sorts results by field ascending.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc sorts results by field descending.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field})
		return q
	}
}

// WithLimit sets the maximum number of results.
func WithLimit(limit int) Option {
	return func(q Query) Query {
		q.limit = limit
		return q
	}
}

// WithOffset sets the number of results to skip.
func WithOffset(offset int) Option {
	return func(q Query) Query {
		q.offset = offset
		return q
	}
}
