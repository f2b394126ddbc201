package main

import "smartystreets-api/pkg/logger"

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	app.InitializeServer()
	if err := app.Run(); err != nil {
		logger.GlobalLogger.Fatalf("%v", err)
	}
}
