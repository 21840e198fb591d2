package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/medfinder/internal/app"
	"github.com/dmitrijs2005/medfinder/internal/config"
)

func main() {
	cfg := config.LoadConfig()
	root, cleanup := app.NewRootCommand(cfg)

	err := root.ExecuteContext(context.Background())
	if cerr := cleanup(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}

	if err != nil {
		if !errors.Is(err, app.ErrFlowFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
