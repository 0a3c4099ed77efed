// Command createadmin ensures the admin account exists. Existing credentials
// are never overwritten.
package main

import (
	"flag"
	"log"

	"github.com/codewith-lab/ssrblog/config"
	"github.com/codewith-lab/ssrblog/seed"
)

func main() {
	configDir := flag.String("config", "./config", "directory containing config.yaml")
	flag.Parse()

	if err := run(*configDir); err != nil {
		log.Fatalf("createadmin: %v", err)
	}
}

func run(configDir string) error {
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

	if err := config.EnsureSchema(db, false); err != nil {
		return err
	}

	created, err := seed.EnsureAdmin(db, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		log.Println("Admin user created successfully.")
	} else {
		log.Println("Admin user already exists.")
	}
	return nil
}
