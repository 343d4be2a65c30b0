package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Valentina9990/top-talent/config"
	"github.com/Valentina9990/top-talent/internal/auth"
	"github.com/Valentina9990/top-talent/internal/cache"
	"github.com/Valentina9990/top-talent/internal/mailer"
	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/Valentina9990/top-talent/internal/storage"
	"github.com/Valentina9990/top-talent/internal/user"
	"github.com/Valentina9990/top-talent/routes"
	"github.com/spf13/cobra"
)

var autoMigrate bool

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the Top Talent API server",
	Long: `Starts the Top Talent API server. Usage:

	top-talent server [--migrate=false]
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "Run AutoMigrate before serving")
}

func runServer(ctx context.Context) error {
	cfg, db, err := connect()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if autoMigrate {
		if err := models.AutoMigrate(db.WithContext(ctx)); err != nil {
			return fmt.Errorf("AutoMigrate failed: %w", err)
		}
		log.Println("AutoMigrate successful")
	}

	redisClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx); err != nil {
		log.Printf("WARNING: redis unavailable, token revocation disabled: %v", err)
	}
	tokens := auth.NewTokenStore(redisClient)

	mail, err := mailer.New(mailer.Options{
		Transport:   cfg.Mail.Transport,
		From:        cfg.Mail.From,
		RabbitMQURL: cfg.Mail.RabbitMQURL,
		Queue:       cfg.Mail.Queue,
	})
	if err != nil {
		log.Printf("WARNING: mail transport %q unavailable, logging emails instead: %v", cfg.Mail.Transport, err)
		mail = mailer.NewLogMailer(cfg.Mail.From)
	}
	defer mail.Close()

	authService := auth.NewAuthService(user.NewUserRepository(db), tokens, mail, auth.Options{
		AccessTokenSecret:        cfg.JWT.AccessTokenSecret,
		AccessTokenExpiryMinutes: cfg.JWT.AccessTokenExpiryMinutes,
		RefreshTokenSecret:       cfg.JWT.RefreshTokenSecret,
		RefreshTokenExpiryDays:   cfg.JWT.RefreshTokenExpiryDays,
		FrontendURL:              cfg.App.FrontendURL,
	})

	r := routes.SetupRoutes(routes.Deps{
		DB:          db,
		JWTSecret:   cfg.JWT.AccessTokenSecret,
		Auth:        authService,
		Tokens:      tokens,
		Uploads:     newUploadService(ctx, cfg),
		FrontendURL: cfg.App.FrontendURL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Println("Gracefully shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newUploadService returns nil when storage is not configured; the upload
// routes are then not mounted.
func newUploadService(ctx context.Context, cfg *config.Config) *storage.UploadService {
	store, err := storage.New(ctx, storage.Options{
		Provider:      cfg.Storage.Provider,
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		UseSSL:        cfg.Storage.UseSSL,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Printf("WARNING: object storage unavailable, uploads disabled: %v", err)
		return nil
	}
	if m, ok := store.(*storage.MinioClient); ok {
		if err := m.EnsureBucket(ctx); err != nil {
			log.Printf("WARNING: could not ensure bucket %s: %v", m.Bucket(), err)
		}
	}
	return storage.NewUploadService(store, time.Duration(cfg.Storage.PresignExpiryMinutes)*time.Minute)
}
