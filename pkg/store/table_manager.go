package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/moznion/go-optional"
	"golang.org/x/xerrors"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/commtypes"
	"streamrun/pkg/debug"
	"streamrun/pkg/env_config"
	"streamrun/pkg/snapshot_store"
)

// TableManager owns the tables one task declared and persists them as one
// snapshot manifest per checkpoint epoch. The owning task is the only
// writer; there are no concurrent checkpoint calls.
type TableManager struct {
	configs  map[string]TableConfig
	kv       map[string]KeyValueTable
	timers   map[string]*TimerTable
	ss       snapshot_store.SnapshotStore
	manifest commtypes.SerdeG[commtypes.SnapshotManifest]
	taskID   string
}

func NewTableManager(taskID string, configs map[string]TableConfig,
	ss snapshot_store.SnapshotStore, serdeFormat commtypes.SerdeFormat,
) (*TableManager, error) {
	manifestSerde, err := commtypes.GetSnapshotManifestSerdeG(serdeFormat)
	if err != nil {
		return nil, err
	}
	tm := &TableManager{
		taskID:   taskID,
		configs:  configs,
		kv:       make(map[string]KeyValueTable),
		timers:   make(map[string]*TimerTable),
		ss:       ss,
		manifest: manifestSerde,
	}
	for name, cfg := range configs {
		switch cfg.Kind {
		case TABLE_KEY_VALUE:
			if env_config.SKIPMAP_KV {
				tm.kv[name] = NewSkipmapKeyValueTable(name)
			} else {
				tm.kv[name] = NewBTreeKeyValueTable(name)
			}
		case TABLE_TIMER:
			tm.timers[name] = NewTimerTable(name)
		default:
			return nil, xerrors.Errorf("table %s kind %v: %w", name, cfg.Kind, common_errors.ErrUnknownTableKind)
		}
	}
	return tm, nil
}

// Configs exposes the declared table configurations read-only.
func (tm *TableManager) Configs() map[string]TableConfig {
	return tm.configs
}

func (tm *TableManager) GetKeyValueTable(name string) (KeyValueTable, error) {
	t, ok := tm.kv[name]
	if !ok {
		return nil, xerrors.Errorf("key value table %s: %w", name, common_errors.ErrTableNotDeclared)
	}
	return t, nil
}

func (tm *TableManager) GetTimerTable(name string) (*TimerTable, error) {
	t, ok := tm.timers[name]
	if !ok {
		return nil, xerrors.Errorf("timer table %s: %w", name, common_errors.ErrTableNotDeclared)
	}
	return t, nil
}

// TimerTables returns every declared timer table; the execution loop expires
// them on watermark advance.
func (tm *TableManager) TimerTables() map[string]*TimerTable {
	return tm.timers
}

// Checkpoint serializes every table plus the merged watermark into a
// manifest for the barrier's epoch and writes it through the snapshot store.
func (tm *TableManager) Checkpoint(ctx context.Context, b commtypes.CheckpointBarrier,
	wm optional.Option[commtypes.Watermark],
) error {
	if tm.ss == nil {
		if len(tm.configs) == 0 {
			// stateless task with no backend configured: nothing to persist
			return nil
		}
		return common_errors.ErrSnapshotBackendNotSet
	}
	m := commtypes.SnapshotManifest{
		Barrier:   b,
		TakenAtMs: time.Now().UnixMilli(),
		Tables:    make([]commtypes.TableSnapshot, 0, len(tm.kv)+len(tm.timers)),
	}
	if wm.IsSome() {
		m.WmPresent = true
		m.Wm = wm.Unwrap()
	}
	for _, t := range tm.kv {
		m.Tables = append(m.Tables, t.Snapshot())
	}
	for _, t := range tm.timers {
		m.Tables = append(m.Tables, t.Snapshot())
	}
	encoded, buf, err := tm.manifest.Encode(m)
	if err != nil {
		return err
	}
	if env_config.DUMP_SNAPSHOT {
		fmt.Fprintf(os.Stderr, "%s epoch %d snapshot size: %d\n", tm.taskID, b.Epoch, len(encoded))
		debug.PrintByteSlice(encoded)
	}
	err = tm.ss.StoreSnapshot(ctx, tm.taskID, b.Epoch, encoded)
	if tm.manifest.UsedBufferPool() && buf != nil {
		*buf = encoded
		commtypes.PushBuffer(buf)
	}
	return err
}

// RestoreFrom loads the manifest stored for the epoch and replaces every
// table's contents with it. The returned manifest carries the merged
// watermark captured at checkpoint time.
func (tm *TableManager) RestoreFrom(ctx context.Context, epoch uint32) (*commtypes.SnapshotManifest, error) {
	if tm.ss == nil {
		return nil, common_errors.ErrSnapshotBackendNotSet
	}
	payload, err := tm.ss.GetSnapshot(ctx, tm.taskID, epoch)
	if err != nil {
		return nil, err
	}
	m, err := tm.manifest.Decode(payload)
	if err != nil {
		return nil, err
	}
	for _, snap := range m.Tables {
		if err := tm.restoreTable(snap); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// LoadCompacted folds externally compacted table data into the live tables.
// Each payload entry is one msgp encoded table snapshot; entries replace the
// matching keys rather than the whole table.
func (tm *TableManager) LoadCompacted(ctx context.Context, payload *commtypes.CompactionPayload) error {
	for name, raw := range payload.Tables {
		var snap commtypes.TableSnapshot
		if _, err := snap.UnmarshalMsg(raw); err != nil {
			return xerrors.Errorf("decode compacted table %s: %w", name, err)
		}
		if t, ok := tm.kv[name]; ok {
			for i, k := range snap.Keys {
				if err := t.Put(ctx, k, snap.Values[i]); err != nil {
					return err
				}
			}
			continue
		}
		if t, ok := tm.timers[name]; ok {
			for i, ts := range snap.TimerTss {
				t.Register(ts, snap.TimerKeys[i], snap.Values[i])
			}
			continue
		}
		return xerrors.Errorf("compacted table %s: %w", name, common_errors.ErrTableNotDeclared)
	}
	return nil
}

func (tm *TableManager) restoreTable(snap commtypes.TableSnapshot) error {
	if t, ok := tm.kv[snap.Name]; ok {
		return t.Restore(snap)
	}
	if t, ok := tm.timers[snap.Name]; ok {
		return t.Restore(snap)
	}
	return xerrors.Errorf("snapshot table %s: %w", snap.Name, common_errors.ErrTableNotDeclared)
}
