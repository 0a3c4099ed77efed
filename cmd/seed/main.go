// Command seed populates an empty store with the baseline articles. Safe to
// re-run: it does nothing once any article exists.
package main

import (
	"flag"
	"log"

	"github.com/codewith-lab/ssrblog/config"
	"github.com/codewith-lab/ssrblog/seed"
)

func main() {
	configDir := flag.String("config", "./config", "directory containing config.yaml")
	reset := flag.Bool("reset", false, "drop and recreate all tables first (development only)")
	flag.Parse()

	if err := run(*configDir, *reset); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

// run keeps all work behind error returns so the deferred close runs on
// every exit path.
func run(configDir string, reset bool) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		return err
	}
	defer config.CloseDB(db)
	log.Println("Connection has been established successfully.")

	if err := config.EnsureSchema(db, reset); err != nil {
		return err
	}
	log.Println("Database synced.")

	created, err := seed.Articles(db)
	if err != nil {
		return err
	}
	if created > 0 {
		log.Printf("Dummy data added: %d articles.", created)
	} else {
		log.Println("Articles already present, nothing to seed.")
	}
	return nil
}
