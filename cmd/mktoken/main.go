// mktoken mints a signed caller token for local development. The service
// never issues identity itself; it only verifies tokens like these.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func main() {
	principal := flag.String("principal", "", "opaque caller identity (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	if *principal == "" {
		*principal = uuid.NewString()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"principal": *principal,
		"exp":       time.Now().Add(*ttl).Unix(),
		"iat":       time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Printf("principal: %s\n", *principal)
	fmt.Printf("token: %s\n", signed)
}
