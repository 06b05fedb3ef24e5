package v1handler

import (
	"context"
	"time"
)

//go:generate mockgen -package mockv1handler -source=interface.go -destination=mock/mockv1handler.go

// Observer is notified once per evaluated operation. err is nil on success.
type Observer interface {
	Observe(ctx context.Context, operation string, duration time.Duration, err error)
}
