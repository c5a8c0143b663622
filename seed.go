package odds

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/ayejay/odds.go/log"
	"github.com/ayejay/odds.go/splitmix"
)

// Swappable in tests.
var cryptoReader func(p []byte) (int, error) = rand.Read

// EntropyFallbackLogger is called when GetSeed cannot read from
// crypto/rand. Replace it to route or silence the report.
var EntropyFallbackLogger log.Wrapper = log.ZapWrapper(zapcore.WarnLevel)

// GetSeed returns a seed for a pseudo-random stream.
//
// It reads 8 bytes from crypto/rand and folds in a time-based word
// finalized through the seed mixer, so a partial or failed read still
// yields a usable seed. A failed read is reported through
// EntropyFallbackLogger.
//
// The result is suitable for seeding the non-cryptographic generators in
// this module; it is not a substitute for crypto/rand elsewhere.
func GetSeed() uint64 {
	buf := make([]byte, 8)
	if _, err := cryptoReader(buf); err != nil {
		EntropyFallbackLogger("odds: crypto/rand read failed, seed is time-based: " + err.Error())
	}
	return binary.BigEndian.Uint64(buf) ^ splitmix.New(uint64(time.Now().UnixNano())).Next()
}
