package processor

import "streamrun/pkg/commtypes"

var _ = (Predicate)(PredicateFunc(nil))

type PredicateFunc func(*commtypes.Row) (bool, error)

type Predicate interface {
	Assert(*commtypes.Row) (bool, error)
}

func (fn PredicateFunc) Assert(r *commtypes.Row) (bool, error) {
	return fn(r)
}

var _ = (Mapper)(MapperFunc(nil))

type MapperFunc func(commtypes.Row) (commtypes.Row, error)

type Mapper interface {
	Map(commtypes.Row) (commtypes.Row, error)
}

func (fn MapperFunc) Map(r commtypes.Row) (commtypes.Row, error) {
	return fn(r)
}
