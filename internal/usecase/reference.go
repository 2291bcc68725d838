package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewPaymentReference builds a globally unique, client-correlatable
// reference: <prefix>-<unix-millis>-<random>. It is generated before the
// gateway call so the webhook can always find its row. A collision on
// insert is treated as a fatal configuration error, never retried silently.
func NewPaymentReference(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UTC().UnixMilli(), suffix)
}
