package main

import (
	"fmt"
	"log"
	"os"

	"github.com/toyshop/storefront/internal/app"
	"github.com/toyshop/storefront/internal/utils/password"
)

func main() {
	// storefront hash-password <пароль> печатает значение для ADMIN_PASSWORD_HASH
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Args[2:]); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return
	}

	application, err := app.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func hashPassword(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("usage: storefront hash-password <password>")
	}

	hash, err := password.NewBCryptHasher(password.DefaultCost).Hash(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
