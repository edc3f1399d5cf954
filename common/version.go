package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Version of UNN contracts encoded as major*1_000_000 + minor*1_000 + patch.
const Version = 1_002_000

// MinUpdateVersion is the oldest deployed version whose storage layout can
// be taken over by an update to Version.
const MinUpdateVersion = 1_001_000

const (
	// ErrVersionMismatch is thrown when an update starts from a version older
	// than MinUpdateVersion.
	ErrVersionMismatch = "previous version mismatch"
	// ErrAlreadyUpdated is thrown when a contract of the current version is
	// updated again.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless a contract of version from may be updated to
// the current one.
func CheckVersion(from int) {
	switch {
	case from == Version:
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	case from < MinUpdateVersion:
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(MinUpdateVersion, 10))
	}
}

// AppendVersion adds the current version to the update data so that the new
// code's _deploy knows which version it replaces.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
