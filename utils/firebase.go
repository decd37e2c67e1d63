// utils/firebase.go
package utils

import (
	"context"
	"log"

	"massagefinder/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
)

// FirebaseInit initializes the Firebase App and the Auth client used to
// verify admin ID tokens.
func FirebaseInit() {
	ctx := context.Background()

	var opts []option.ClientOption
	if config.AppConfig.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	}
	cfg := &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirebaseApp = app
	AuthClient = authClient
}
