// Command token mints a bearer token for local development against the ride service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/config"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/jwt"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "config/rides.env", "env file holding JWT_SECRET")
	userID := flag.String("user", "", "user id (a new one is generated when empty)")
	role := flag.String("role", string(models.RoleClient), "client or driver")
	flag.Parse()

	configs := config.InitConfig(*configPath)
	if configs.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	r := models.Role(*role)
	if !r.Valid() {
		log.Fatalf("unknown role %q", *role)
	}

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("invalid user id: %v", err)
		}
		id = parsed
	}

	token, expiresAt, err := jwt.GenerateToken(id, r, configs)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user_id=%s role=%s expires_at=%d\n", id, r, expiresAt)
	fmt.Println(token)
}
