package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := NewCli()
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}
