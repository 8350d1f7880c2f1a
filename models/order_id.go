package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderIDSuffixLen = 9

// GenerateOrderID builds the externally visible order identifier:
// "ORD-<unix millis>-<random suffix>". The millisecond timestamp plus a
// 9-character slice of a fresh UUID makes collisions negligible in practice;
// the unique index on orders.order_id catches the remainder, and order
// creation retries with a new id on that conflict.
func GenerateOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderIDSuffixLen]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
