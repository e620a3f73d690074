// Package main issues a bearer token for a user, creating the user first if
// needed. It reads the same environment as the API server.
//
//	go run ./cmd/token -email admin@example.com -admin
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/travelbook/internal/auth"
	"github.com/pkordes/travelbook/internal/config"
	"github.com/pkordes/travelbook/internal/repo"
	"github.com/pkordes/travelbook/internal/service"
)

func main() {
	email := flag.String("email", "", "email of the user to issue a token for (required)")
	admin := flag.Bool("admin", false, "grant ROLE_ADMIN to the user")
	flag.Parse()

	if err := run(context.Background(), *email, *admin); err != nil {
		slog.Error("token not issued", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, email string, admin bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("creating database pool: %w", err)
	}
	defer pool.Close()

	users := service.NewUserService(repo.NewUserRepo(pool))
	var token string
	err = repo.NewTxManager(pool).WithinTx(ctx, func(ctx context.Context) error {
		user, err := users.Ensure(ctx, email, admin)
		if err != nil {
			return err
		}
		token, err = auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL).Issue(user)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
