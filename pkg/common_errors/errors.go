package common_errors

import (
	"golang.org/x/xerrors"
)

var (
	ErrUnrecognizedSerdeFormat   = xerrors.New("Unrecognized serde format")
	ErrUnknownOperatorKind       = xerrors.New("unknown operator kind")
	ErrUnknownTableKind          = xerrors.New("unknown table kind")
	ErrTableNotDeclared          = xerrors.New("table not declared in operator config")
	ErrSnapshotNotFound          = xerrors.New("snapshot not found")
	ErrPartitionOutOfRange       = xerrors.New("partition index out of range")
	ErrShuttingDown              = xerrors.New("task is shutting down")
	ErrControlChannelClosed      = xerrors.New("control channel closed")
	ErrSnapshotBackendNotSet     = xerrors.New("snapshot backend not configured")
	ErrMissingOperatorConfigItem = xerrors.New("missing operator config item")
)

func IsSnapshotNotFoundError(err error) bool {
	return xerrors.Is(err, ErrSnapshotNotFound)
}

func IsShuttingDownError(err error) bool {
	return xerrors.Is(err, ErrShuttingDown)
}

func IsControlChannelClosedError(err error) bool {
	return xerrors.Is(err, ErrControlChannelClosed)
}
