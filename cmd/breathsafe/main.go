package main

import (
	"os"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
