package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/internal/config"
	"github.com/jakechorley/shift-planner/pkg/clients/gmailclient"
	"github.com/jakechorley/shift-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-planner/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Env      string
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	sheetsClient *sheetsclient.Client
	gmailClient  *gmailclient.Client
}

// SheetsClient authenticates with Google on first use and reuses the client afterwards
func (a *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	a.Logger.Debug("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.Logger.Debug("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg, a.Env, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheetsClient = client
	return client, nil
}

// GmailClient shares the sheets client's OAuth token
func (a *AppContext) GmailClient() (*gmailclient.Client, error) {
	if a.gmailClient != nil {
		return a.gmailClient, nil
	}

	sheets, err := a.SheetsClient()
	if err != nil {
		return nil, err
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.Logger.Debug("Initializing gmail client")
	client, err := gmailclient.NewClient(a.Ctx, oauthCfg, sheets.Token(), a.Cfg.GmailSender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	a.gmailClient = client
	return client, nil
}
