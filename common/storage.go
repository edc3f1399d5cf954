package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns integer stored under the key or 0 if it is missing.
func GetInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v == nil {
		return 0
	}

	return v.(int)
}

// PutInt stores integer value under the key. Zero values are removed from
// the storage.
func PutInt(ctx storage.Context, key any, v int) {
	if v == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, v)
}

// GetHash160 returns script hash stored under the key or nil. The value is
// returned as a byte string, like the ones accepted as arguments.
func GetHash160(ctx storage.Context, key any) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}

// AccountKey concatenates prefix byte and one or more script hashes.
func AccountKey(prefix byte, addrs ...interop.Hash160) []byte {
	key := []byte{prefix}
	for i := range addrs {
		key = append(key, addrs[i]...)
	}

	return key
}
