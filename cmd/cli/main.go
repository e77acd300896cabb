package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/buildinfo"
	"github.com/dmitrijs2005/gophauth/internal/client/biometrics"
	"github.com/dmitrijs2005/gophauth/internal/client/cli"
	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, syncLog, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = syncLog() }()

	kind, err := biometrics.ParseKind(cfg.BiometricSensor)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		log.Fatalf("%v", err)
	}
	if err := filex.EnsureParentDir(cfg.DeviceKeyPath); err != nil {
		log.Fatalf("%v", err)
	}

	secret, err := filex.ReadOrCreateSecret(cfg.DeviceKeyPath, cryptox.KeySize)
	if err != nil {
		log.Fatalf("device key: %v", err)
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	reader := bufio.NewReader(os.Stdin)

	vault := credentials.NewSQLiteVault(db, secret)
	prefs := preferences.NewTxRepository(db)
	sensor := biometrics.New(kind, reader, os.Stdout)

	session := services.NewSession(vault, prefs, sensor, services.WithLogger(logger))
	reset := services.NewPasswordReset(vault, prefs, logger)

	app := cli.NewApp(cfg, session, reset, reader, os.Stdout, logger)
	app.Run(ctx)

}
