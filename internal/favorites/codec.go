package favorites

import (
	"fmt"

	"github.com/tjper/spacex/internal/spacex"

	"github.com/vmihailenco/msgpack/v5"
)

// The saved collection is a msgpack array of msgpack-encoded LaunchDetail
// blobs. Entries are encoded independently so that one corrupt entry can be
// skipped without losing the rest of the collection.

func encodeCollection(blobs [][]byte) ([]byte, error) {
	return msgpack.Marshal(blobs)
}

func decodeCollection(b []byte) ([][]byte, error) {
	var blobs [][]byte
	if err := msgpack.Unmarshal(b, &blobs); err != nil {
		return nil, fmt.Errorf("%w: collection; error: %w", ErrPersistenceDecode, err)
	}
	return blobs, nil
}

func encodeDetail(detail spacex.LaunchDetail) ([]byte, error) {
	return msgpack.Marshal(detail)
}

func decodeDetail(b []byte) (*spacex.LaunchDetail, error) {
	var detail spacex.LaunchDetail
	if err := msgpack.Unmarshal(b, &detail); err != nil {
		return nil, fmt.Errorf("%w: entry; error: %w", ErrPersistenceDecode, err)
	}
	if detail.ID == "" {
		return nil, fmt.Errorf("%w: entry has no id", ErrPersistenceDecode)
	}
	return &detail, nil
}
