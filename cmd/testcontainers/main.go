// Stands up the MariaDB + backend container stack for local development and
// keeps it running until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/huellitas/shelter-backend/tests/helpers"
	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("f", "", "path to a .env file with the stack configuration")
	showHelp := flag.Bool("h", false, "show usage")
	flag.Parse()

	if *showHelp {
		fmt.Println(`Start the shelter backend container stack (MariaDB + API).

Usage:

  testcontainers [-h] [-f ENV_FILE_PATH]

The stack runs until SIGINT/SIGTERM, then tears itself down.`)
		return
	}

	if *envFile != "" {
		log.Printf("Loading environment from %s", *envFile)
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("Failed to load %s: %v", *envFile, err)
		}
	} else {
		log.Print("No env file given, using the current environment")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	var stack *helpers.TestContainers
	go func() {
		var err error
		stack, err = helpers.CreateAllTestContainers(nil)
		if err != nil {
			log.Fatalf("Failed to start container stack: %v", err)
		}
	}()

	sig := <-sigs
	log.Printf("Received %v, terminating container stack", sig)
	if stack != nil {
		stack.Terminate(nil)
	}
}
