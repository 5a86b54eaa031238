package stream_task

import (
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/operator"
)

func TestRegistryBuildsByKind(t *testing.T) {
	r := NewRegistry()
	r.RegisterOperator("recording", func(conf *gabs.Container) (operator.StreamOperator, error) {
		return &recordingOp{}, nil
	})

	conf, err := gabs.ParseJSON([]byte(`{"kind": "recording", "parallelism": 2}`))
	require.NoError(t, err)
	op, err := r.BuildOperator(conf)
	require.NoError(t, err)
	require.Equal(t, "recording", op.Name())
	require.Equal(t, 2, ConfIntOr(conf, "parallelism", 1))
	require.Equal(t, 1, ConfIntOr(conf, "missing", 1))

	node, err := r.BuildNode(conf)
	require.NoError(t, err)
	require.False(t, node.IsSource())
	require.Equal(t, "recording", node.Name())
}

func TestRegistryUnknownKind(t *testing.T) {
	r := NewRegistry()
	conf, err := gabs.ParseJSON([]byte(`{"kind": "nope"}`))
	require.NoError(t, err)
	_, err = r.BuildOperator(conf)
	require.True(t, xerrors.Is(err, common_errors.ErrUnknownOperatorKind))
	_, err = r.BuildSource(conf)
	require.True(t, xerrors.Is(err, common_errors.ErrUnknownOperatorKind))
	_, err = r.BuildNode(conf)
	require.True(t, xerrors.Is(err, common_errors.ErrUnknownOperatorKind))
}

func TestRegistryMissingConfigItem(t *testing.T) {
	r := NewRegistry()
	conf := gabs.New()
	_, err := r.BuildOperator(conf)
	require.True(t, xerrors.Is(err, common_errors.ErrMissingOperatorConfigItem))
	_, err = ConfString(conf, "kind")
	require.True(t, xerrors.Is(err, common_errors.ErrMissingOperatorConfigItem))
	_, err = ConfInt(conf, "parallelism")
	require.True(t, xerrors.Is(err, common_errors.ErrMissingOperatorConfigItem))
}
