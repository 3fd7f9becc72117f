package main

import (
	"context"
	"fmt"
	"os"

	"github.com/on-the-ground/memocache/internal/command"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	if err := command.NewApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
