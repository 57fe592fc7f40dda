package search

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gethelpdesk/helpdesk/internal/pkg/log"
)

// Operator is a symbolic comparison tag carried by a filter triple.
type Operator string

const (
	OpEq         Operator = "eq"
	OpNeq        Operator = "neq"
	OpGt         Operator = "gt"
	OpGte        Operator = "gte"
	OpLt         Operator = "lt"
	OpLte        Operator = "lte"
	OpIn         Operator = "in"
	OpNotIn      Operator = "not_in"
	OpBetween    Operator = "between"
	OpNotBetween Operator = "not_between"
	OpIs         Operator = "is"
	OpIsNot      Operator = "is_not"
	OpLike       Operator = "like"
	OpNotLike    Operator = "not_like"
	OpILike      Operator = "ilike"
	OpNotILike   Operator = "not_ilike"
)

// ErrNotImplemented is returned for operators that are declared but
// deliberately unsupported. Callers must not expose them.
var ErrNotImplemented = errors.New("operator not implemented")

// ErrBadValue is returned when a value does not fit the operator's
// shape, e.g. a between without exactly two bounds.
var ErrBadValue = errors.New("operator value has wrong shape")

// BuildPredicate maps (column, operator, value) to a SQL predicate.
// Pure function: no I/O, no state. Unknown operators degrade to
// equality with a warning; not_between fails hard. That asymmetry is
// part of the observable contract and must stay.
func BuildPredicate(col Column, op Operator, value interface{}) (sq.Sqlizer, error) {
	name := col.Qualified()

	switch op {
	case OpEq:
		return sq.Eq{name: value}, nil
	case OpNeq:
		return sq.NotEq{name: value}, nil
	case OpGt:
		return sq.Gt{name: value}, nil
	case OpGte:
		return sq.GtOrEq{name: value}, nil
	case OpLt:
		return sq.Lt{name: value}, nil
	case OpLte:
		return sq.LtOrEq{name: value}, nil

	case OpIn:
		list, err := valueList(value)
		if err != nil {
			return nil, err
		}
		// squirrel renders an empty Eq list as (1=0): matches nothing.
		return sq.Eq{name: list}, nil
	case OpNotIn:
		list, err := valueList(value)
		if err != nil {
			return nil, err
		}
		// An empty NotEq list renders (1=1): matches everything.
		return sq.NotEq{name: list}, nil

	case OpBetween:
		low, high, err := valuePair(value)
		if err != nil {
			return nil, err
		}
		// Inclusive on both bounds.
		return sq.And{sq.GtOrEq{name: low}, sq.LtOrEq{name: high}}, nil
	case OpNotBetween:
		return nil, fmt.Errorf("%w: not_between", ErrNotImplemented)

	case OpIs:
		// NULL-safe equality: "col is null" and "col is value" both work.
		return sq.Expr(name+" IS NOT DISTINCT FROM ?", value), nil
	case OpIsNot:
		return sq.Expr(name+" IS DISTINCT FROM ?", value), nil

	case OpLike:
		return sq.Like{name: value}, nil
	case OpNotLike:
		return sq.NotLike{name: value}, nil
	case OpILike:
		return sq.ILike{name: value}, nil
	case OpNotILike:
		return sq.NotILike{name: value}, nil

	default:
		log.Warn("unknown search operator %q on %s, falling back to equality", op, name)
		return sq.Eq{name: value}, nil
	}
}

func valueList(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case nil:
		return nil, fmt.Errorf("%w: list operator needs an array value", ErrBadValue)
	default:
		// A lone scalar is accepted as a one-element list.
		return []interface{}{v}, nil
	}
}

func valuePair(value interface{}) (interface{}, interface{}, error) {
	v, ok := value.([]interface{})
	if !ok || len(v) != 2 {
		return nil, nil, fmt.Errorf("%w: between needs [low, high]", ErrBadValue)
	}
	return v[0], v[1], nil
}
