package core

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a collection-unique id. UUIDv4 when entropy is
// available, otherwise a timestamp+pseudo-random value that stays
// collision-resistant at single-user scale.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return "id-" + strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatInt(rand.Int63(), 36)
}
