package builtin

import (
	"fmt"

	"github.com/minio/highwayhash"

	"github.com/abdidvp/pushkraft/internal/domain"
)

var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// fingerprint digests data with a keyed 64-bit HighwayHash. The key is fixed
// so digests are comparable across runs and machines.
func fingerprint(name, version string, data []byte) (domain.Fingerprint, error) {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return domain.Fingerprint{}, err
	}
	if _, err := h.Write(data); err != nil {
		return domain.Fingerprint{}, err
	}
	return domain.Fingerprint{
		Name:    name,
		Version: version,
		Digest:  fmt.Sprintf("%016x", h.Sum64()),
	}, nil
}
