package snapshot_store

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/hashfuncs"
)

const SNAPSHOT_BUCKET_NAME = "streamrun-chkpt"

// MinioSnapshotStore spreads snapshot objects across the configured minio
// instances. The payload object and the per-task latest-epoch marker are
// written concurrently.
type MinioSnapshotStore struct {
	minioClients []*minio.Client
}

var _ = SnapshotStore(&MinioSnapshotStore{})

func NewMinioSnapshotStore() (*MinioSnapshotStore, error) {
	raw_addr := os.Getenv("MINIO_ADDR")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretAccessKey := os.Getenv("MINIO_SECRET_KEY")
	addr_arr := strings.Split(raw_addr, ",")
	fmt.Fprintf(os.Stderr, "minio addr is %v\n", addr_arr)
	mcs := make([]*minio.Client, len(addr_arr))
	for i := 0; i < len(addr_arr); i++ {
		mc, err := minio.New(addr_arr[i], &minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretAccessKey, ""),
			Secure: false,
		})
		if err != nil {
			return nil, err
		}
		mcs[i] = mc
	}
	return &MinioSnapshotStore{minioClients: mcs}, nil
}

func (mc *MinioSnapshotStore) CreateSnapshotBucket(ctx context.Context) error {
	for i := 0; i < len(mc.minioClients); i++ {
		exists, err := mc.minioClients[i].BucketExists(ctx, SNAPSHOT_BUCKET_NAME)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		err = mc.minioClients[i].MakeBucket(ctx, SNAPSHOT_BUCKET_NAME, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}
	return nil
}

func (mc *MinioSnapshotStore) pick(key string) *minio.Client {
	idx := hashfuncs.StringHasher{}.HashSum64(key) % uint64(len(mc.minioClients))
	return mc.minioClients[idx]
}

func objName(taskID string, epoch uint32) string {
	return fmt.Sprintf("%s/%#x", taskID, epoch)
}

func latestObjName(taskID string) string {
	return taskID + "/latest"
}

func (mc *MinioSnapshotStore) StoreSnapshot(ctx context.Context, taskID string, epoch uint32, payload []byte) error {
	bg, bctx := errgroup.WithContext(ctx)
	bg.Go(func() error {
		name := objName(taskID, epoch)
		_, err := mc.pick(name).PutObject(bctx, SNAPSHOT_BUCKET_NAME, name,
			bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{})
		return err
	})
	bg.Go(func() error {
		bs := make([]byte, 4)
		binary.LittleEndian.PutUint32(bs, epoch)
		name := latestObjName(taskID)
		_, err := mc.pick(name).PutObject(bctx, SNAPSHOT_BUCKET_NAME, name,
			bytes.NewReader(bs), int64(len(bs)), minio.PutObjectOptions{})
		return err
	})
	return bg.Wait()
}

func (mc *MinioSnapshotStore) GetSnapshot(ctx context.Context, taskID string, epoch uint32) ([]byte, error) {
	name := objName(taskID, epoch)
	obj, err := mc.pick(name).GetObject(ctx, SNAPSHOT_BUCKET_NAME, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	payload, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil, common_errors.ErrSnapshotNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (mc *MinioSnapshotStore) LatestEpoch(ctx context.Context, taskID string) (uint32, error) {
	name := latestObjName(taskID)
	obj, err := mc.pick(name).GetObject(ctx, SNAPSHOT_BUCKET_NAME, name, minio.GetObjectOptions{})
	if err != nil {
		return 0, err
	}
	defer obj.Close()
	bs, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return 0, common_errors.ErrSnapshotNotFound
		}
		return 0, err
	}
	if len(bs) != 4 {
		return 0, fmt.Errorf("latest epoch marker for %s has %d bytes", taskID, len(bs))
	}
	return binary.LittleEndian.Uint32(bs), nil
}
