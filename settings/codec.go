package settings

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

var (
	snapEncMode cbor.EncMode
	snapDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339,
	}
	snapEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	snapDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeCBOR encodes a snapshot with canonical key order, so equal snapshots
// encode to equal bytes.
func EncodeCBOR(s Snapshot) ([]byte, error) {
	return snapEncMode.Marshal(s)
}

func DecodeCBOR(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := snapDecMode.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

func EncodeYAML(s Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

func DecodeYAML(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
