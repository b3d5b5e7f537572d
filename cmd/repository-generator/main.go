package main

import (
	"os"

	"github.com/lab2view/laravel-repository-generator/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	// Setup logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd()
	if err := cli.Execute(rootCmd); err != nil {
		os.Exit(1)
	}
}
