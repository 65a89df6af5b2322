// Package query describes repository lookups as plain values.
//
// A Spec is an immutable list of conditions, orderings and eager-loaded relations.
// Storage adapters translate it; nothing here knows about SQL drivers.
//
//	spec := query.New(
//	    query.Eq("user_id", 7),
//	    query.Eq("delivery_status_id", 3),
//	    query.Gt("post_box_id", 0),
//	).OrderBy("id", query.Asc).AsReadOnly()
package query

import "fmt"

// Operator is a comparison between a column and a value.
type Operator int

const (
	OpEq Operator = iota + 1
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	OpIsNull
	OpNotNull
)

func (o Operator) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpIn:
		return "IN"
	case OpIsNull:
		return "IS NULL"
	case OpNotNull:
		return "IS NOT NULL"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Unary reports whether the operator takes no value.
func (o Operator) Unary() bool {
	return o == OpIsNull || o == OpNotNull
}

// Condition compares a column with a value. Conditions within a Spec are ANDed.
type Condition struct {
	Column string
	Op     Operator
	Value  any
}

func Eq(column string, value any) Condition  { return Condition{Column: column, Op: OpEq, Value: value} }
func Ne(column string, value any) Condition  { return Condition{Column: column, Op: OpNe, Value: value} }
func Gt(column string, value any) Condition  { return Condition{Column: column, Op: OpGt, Value: value} }
func Gte(column string, value any) Condition { return Condition{Column: column, Op: OpGte, Value: value} }
func Lt(column string, value any) Condition  { return Condition{Column: column, Op: OpLt, Value: value} }
func Lte(column string, value any) Condition { return Condition{Column: column, Op: OpLte, Value: value} }
func In(column string, values any) Condition { return Condition{Column: column, Op: OpIn, Value: values} }
func IsNull(column string) Condition         { return Condition{Column: column, Op: OpIsNull} }
func NotNull(column string) Condition        { return Condition{Column: column, Op: OpNotNull} }

// Direction of an ordering.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Order sorts results by one column.
type Order struct {
	Column    string
	Direction Direction
}

// Spec is the full description of a lookup. The zero value matches everything.
type Spec struct {
	conditions []Condition
	orders     []Order
	includes   []string
	readOnly   bool
}

// New returns a Spec matching rows that satisfy all conditions.
func New(conditions ...Condition) Spec {
	return Spec{conditions: append([]Condition(nil), conditions...)}
}

// All matches every row.
func All() Spec {
	return Spec{}
}

// Where returns a copy of s with extra conditions.
func (s Spec) Where(conditions ...Condition) Spec {
	cp := s.clone()
	cp.conditions = append(cp.conditions, conditions...)
	return cp
}

// OrderBy returns a copy of s with an extra ordering.
func (s Spec) OrderBy(column string, direction Direction) Spec {
	cp := s.clone()
	cp.orders = append(cp.orders, Order{Column: column, Direction: direction})
	return cp
}

// Include returns a copy of s that eagerly loads the named relations.
// Relation names are dotted paths such as "UserRoles.Role".
func (s Spec) Include(relations ...string) Spec {
	cp := s.clone()
	cp.includes = append(cp.includes, relations...)
	return cp
}

// AsReadOnly marks results as not intended for a subsequent update.
func (s Spec) AsReadOnly() Spec {
	cp := s.clone()
	cp.readOnly = true
	return cp
}

func (s Spec) Conditions() []Condition { return append([]Condition(nil), s.conditions...) }
func (s Spec) Orders() []Order         { return append([]Order(nil), s.orders...) }
func (s Spec) Includes() []string      { return append([]string(nil), s.includes...) }
func (s Spec) ReadOnly() bool          { return s.readOnly }

// Unconditional reports whether s would match every row.
func (s Spec) Unconditional() bool {
	return len(s.conditions) == 0
}

// String renders s for logs and error messages.
func (s Spec) String() string {
	out := ""
	for i, c := range s.conditions {
		if i > 0 {
			out += " AND "
		}
		if c.Op.Unary() {
			out += fmt.Sprintf("%s %s", c.Column, c.Op)
			continue
		}
		out += fmt.Sprintf("%s %s %v", c.Column, c.Op, c.Value)
	}
	if out == "" {
		return "<all>"
	}
	return out
}

func (s Spec) clone() Spec {
	return Spec{
		conditions: append([]Condition(nil), s.conditions...),
		orders:     append([]Order(nil), s.orders...),
		includes:   append([]string(nil), s.includes...),
		readOnly:   s.readOnly,
	}
}
