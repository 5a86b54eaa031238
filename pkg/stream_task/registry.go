package stream_task

import (
	"github.com/Jeffail/gabs/v2"
	"golang.org/x/xerrors"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/operator"
)

type OperatorFactory func(conf *gabs.Container) (operator.StreamOperator, error)
type SourceFactory func(conf *gabs.Container) (operator.SourceOperator, error)

// Registry maps operator kind names from a pipeline config to factories. Not
// safe for concurrent registration; register everything at startup.
type Registry struct {
	ops  map[string]OperatorFactory
	srcs map[string]SourceFactory
}

func NewRegistry() *Registry {
	return &Registry{
		ops:  make(map[string]OperatorFactory),
		srcs: make(map[string]SourceFactory),
	}
}

func (r *Registry) RegisterOperator(kind string, f OperatorFactory) {
	r.ops[kind] = f
}

func (r *Registry) RegisterSource(kind string, f SourceFactory) {
	r.srcs[kind] = f
}

// BuildOperator constructs the operator named by the config's "kind" field,
// passing the full config container to the factory.
func (r *Registry) BuildOperator(conf *gabs.Container) (operator.StreamOperator, error) {
	kind, err := ConfString(conf, "kind")
	if err != nil {
		return nil, err
	}
	f, ok := r.ops[kind]
	if !ok {
		return nil, xerrors.Errorf("operator kind %s: %w", kind, common_errors.ErrUnknownOperatorKind)
	}
	return f(conf)
}

func (r *Registry) BuildSource(conf *gabs.Container) (operator.SourceOperator, error) {
	kind, err := ConfString(conf, "kind")
	if err != nil {
		return nil, err
	}
	f, ok := r.srcs[kind]
	if !ok {
		return nil, xerrors.Errorf("source kind %s: %w", kind, common_errors.ErrUnknownOperatorKind)
	}
	return f(conf)
}

// BuildNode constructs an OperatorNode from the config's "kind" field,
// whichever side of the registry the kind lives on.
func (r *Registry) BuildNode(conf *gabs.Container) (OperatorNode, error) {
	kind, err := ConfString(conf, "kind")
	if err != nil {
		return OperatorNode{}, err
	}
	if f, ok := r.ops[kind]; ok {
		op, err := f(conf)
		if err != nil {
			return OperatorNode{}, err
		}
		return FromOperator(op), nil
	}
	if f, ok := r.srcs[kind]; ok {
		src, err := f(conf)
		if err != nil {
			return OperatorNode{}, err
		}
		return FromSource(src), nil
	}
	return OperatorNode{}, xerrors.Errorf("kind %s: %w", kind, common_errors.ErrUnknownOperatorKind)
}

// ConfString reads a required string item from an operator config.
func ConfString(conf *gabs.Container, path string) (string, error) {
	v, ok := conf.Path(path).Data().(string)
	if !ok {
		return "", xerrors.Errorf("config item %s: %w", path, common_errors.ErrMissingOperatorConfigItem)
	}
	return v, nil
}

// ConfInt reads a required numeric item from an operator config. JSON numbers
// decode as float64; the value is truncated.
func ConfInt(conf *gabs.Container, path string) (int, error) {
	v, ok := conf.Path(path).Data().(float64)
	if !ok {
		return 0, xerrors.Errorf("config item %s: %w", path, common_errors.ErrMissingOperatorConfigItem)
	}
	return int(v), nil
}

// ConfStringOr reads an optional string item with a default.
func ConfStringOr(conf *gabs.Container, path string, def string) string {
	if v, ok := conf.Path(path).Data().(string); ok {
		return v
	}
	return def
}

// ConfIntOr reads an optional numeric item with a default.
func ConfIntOr(conf *gabs.Container, path string, def int) int {
	if v, ok := conf.Path(path).Data().(float64); ok {
		return int(v)
	}
	return def
}
