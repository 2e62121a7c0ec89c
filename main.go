package main

import (
	"os"

	"github.com/EncoreMusictech/encore-live-sub008/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
