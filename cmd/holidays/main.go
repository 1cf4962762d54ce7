package main

import (
	"fmt"
	"os"

	"github.com/alpacahq/holidays/cmd"
	"github.com/alpacahq/holidays/utils/log"
)

func main() {
	defer log.Sync()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Sync()
		os.Exit(1)
	}
}
