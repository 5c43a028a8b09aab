package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/motorlog/motorlog-api/api/handlers"
	"github.com/motorlog/motorlog-api/config"
	"github.com/motorlog/motorlog-api/logging"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	// config installs a bare example logger, swap in the production one
	logger := logging.New()
	defer logger.Sync()
	zap.ReplaceGlobals(logger.Desugar())

	if err := a.Initialize(); err != nil { //initialize sheet store and router
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("motorlog-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
