package main

import (
	"insightmix/cmd/cmd"
	"insightmix/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}
