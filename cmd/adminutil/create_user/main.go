package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/obi-dev/authhub/internal/config"
	"github.com/obi-dev/authhub/internal/db"
	"github.com/obi-dev/authhub/internal/user"
)

func main() {
	email := flag.String("email", "", "Email of the user to create")
	name := flag.String("name", "", "Display name of the user")
	password := flag.String("password", "", "Plaintext password (hashed before storage)")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		log.Fatalf("usage: go run cmd/adminutil/create_user/main.go -email user@example.com -name \"Some User\" -password secret")
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	repo := user.NewPostgresRepository(pool)
	id, err := repo.Create(ctx, &user.User{
		Email:    *email,
		Name:     *name,
		Password: string(hashed),
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			log.Fatalf("a user with email %s already exists", *email)
		}
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("User %s created with id %d.\n", *email, id)
}
