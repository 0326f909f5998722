package orders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampOrderID builds the historical identifier shape: ORD followed by
// the order time in unix milliseconds and a three-digit random suffix. The
// suffix does not make collisions impossible, only unlikely at this order
// volume.
func timestampOrderID(t time.Time) string {
	return fmt.Sprintf("ORD%d%03d", t.UnixMilli(), rand.Intn(1000))
}

// uuidOrderID builds a collision-resistant identifier for multi-writer
// deployments. The ORD prefix is kept so callers that pattern-match on it
// keep working.
func uuidOrderID() string {
	return "ORD" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
