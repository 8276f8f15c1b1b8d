package main

import (
	"TrailGuide/internal/cmd"
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	root := cmd.NewRootCommand(InitializeServer)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logrus.WithFields(logrus.Fields{
			"status": "error",
		}).Error(err)
		os.Exit(1)
	}
}
