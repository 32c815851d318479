package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"qrkeep/internal/client"
	"qrkeep/internal/identity"
	"qrkeep/internal/pkg/config"
	"qrkeep/internal/tui"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	serverAddr := flag.String("server", envOr("QRKEEP_SERVER", "http://localhost:5000"), "qrkeep server address")
	identityAddr := flag.String("identity", envOr("IDENTITY_ENDPOINT", ""), "identity provider address")
	session := flag.String("session", envOr("QRKEEP_SESSION", ""), "session token issued by the identity provider")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	if *identityAddr == "" || *session == "" {
		fmt.Fprintln(os.Stderr, "an identity endpoint and session token are required (see -identity and -session)")
		os.Exit(2)
	}

	apiClient, err := client.New(*serverAddr, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid server address: %v\n", err)
		os.Exit(1)
	}

	provider, err := identity.NewClient(config.IdentityConfig{Endpoint: *identityAddr, Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid identity endpoint: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(context.Background(), apiClient, provider, *session); err != nil {
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
