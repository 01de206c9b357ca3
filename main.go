package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/emailotp/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Run the console dialog
	<-wait                      // Wait for the dialog to end or a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
