package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/web3-freelance/internal/logger"
)

// SafeGoWithContext запускает фоновую задачу и логирует панику вместо падения процесса.
func SafeGoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().WithFields(logrus.Fields{
					"task":  name,
					"panic": r,
					"stack": string(debug.Stack()),
				}).Error("Panic in goroutine")
			}
		}()
		fn(ctx)
	}()
}
