package errutil

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/utils/logging"
)

// Handle logs the error with a message and returns it for the caller to
// propagate. This function ensures that all errors, especially unexpected
// ones, are properly logged with their goerr context.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, slog.Any("error", err))
	}

	return err
}
