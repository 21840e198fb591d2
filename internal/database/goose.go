package database

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/medfinder/internal/logging"
)

// gooseLogger routes goose output into the application log instead of stdout,
// which the terminal UI owns.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
	os.Exit(1)
}
