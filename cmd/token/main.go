// Command token mints a bearer token for the API write guard using the
// configured jwt.secret.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ArowuTest/blood-donation-backend/internal/config"
	apijwt "github.com/ArowuTest/blood-donation-backend/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	configPath := flag.String("config", ".", "directory holding .env and config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.WriteGuardEnabled() {
		log.Fatal("jwt.secret is not set; the write guard is disabled and no token is needed")
	}

	token, err := apijwt.Sign(cfg.JWT.Secret, *subject, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
