package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jakechorley/shift-planner/internal/config"
)

const (
	AuthPort       = 3000
	authTimeout    = 5 * time.Minute
	callbackPath   = "/oauth/callback"
	tokenDirName   = ".shift-planner/tokens"
	tokenFilePerms = 0600
	tokenDirPerms  = 0700
)

// OAuth scopes for Google APIs
const (
	ScopeSheets    = "https://www.googleapis.com/auth/spreadsheets"
	ScopeGmailSend = "https://www.googleapis.com/auth/gmail.send"
)

var (
	tokenCache   *oauth2.Token
	tokenCacheMu sync.Mutex
)

// RequiredScopes returns every scope publishing needs
func RequiredScopes() []string {
	return []string{ScopeSheets, ScopeGmailSend}
}

// GetOAuthConfig creates an OAuth2 config from the OAuth client configuration.
// The redirect URI is replaced with the local callback server.
func GetOAuthConfig(oauthCfg *config.OAuthClientConfig) (*oauth2.Config, error) {
	oauthConfigJSON, err := json.Marshal(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oauth config: %w", err)
	}

	googleConfig, err := google.ConfigFromJSON(oauthConfigJSON, RequiredScopes()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google config: %w", err)
	}

	googleConfig.RedirectURL = fmt.Sprintf("http://localhost:%d%s", AuthPort, callbackPath)

	return googleConfig, nil
}

// MissingScopes lists required scopes absent from the token's granted "scope" field.
// A token without a scope field (e.g. loaded from disk) is trusted.
func MissingScopes(token *oauth2.Token) []string {
	granted, ok := token.Extra("scope").(string)
	if !ok || granted == "" {
		return nil
	}

	grantedScopes := strings.Fields(granted)
	var missing []string
	for _, required := range RequiredScopes() {
		if !slices.Contains(grantedScopes, required) {
			missing = append(missing, required)
		}
	}
	return missing
}

// GetTokenWithFlow returns a valid token for env, trying the memory cache, then the token file
// (refreshing it when expired), then the interactive browser flow. Only one flow runs at a time.
func GetTokenWithFlow(ctx context.Context, oauthConfig *oauth2.Config, env string, logger *zap.Logger) (*oauth2.Token, error) {
	tokenCacheMu.Lock()
	defer tokenCacheMu.Unlock()

	if tokenCache != nil && tokenCache.Valid() {
		return tokenCache, nil
	}

	if token := loadUsableToken(ctx, oauthConfig, env, logger); token != nil {
		tokenCache = token
		return token, nil
	}

	logger.Info("No valid token found, starting OAuth flow")
	authURL := oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Printf("\nVisit this URL to authorize the application:\n%s\n\n", authURL)

	code, err := listenForAuthCallback(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization code: %w", err)
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if missing := MissingScopes(token); len(missing) > 0 {
		return nil, fmt.Errorf("token is missing required scopes: %v", missing)
	}

	if err := SaveTokenToFile(env, token); err != nil {
		logger.Warn("Failed to save token to file", zap.Error(err))
	}

	tokenCache = token
	return token, nil
}

// loadUsableToken returns the stored token if it is valid or can be refreshed, nil otherwise
func loadUsableToken(ctx context.Context, oauthConfig *oauth2.Config, env string, logger *zap.Logger) *oauth2.Token {
	fileToken, err := LoadTokenFromFile(env)
	if err != nil {
		logger.Warn("Failed to load token from file", zap.Error(err))
		return nil
	}
	if fileToken == nil {
		return nil
	}

	if fileToken.Valid() {
		return fileToken
	}

	if fileToken.RefreshToken == "" {
		return nil
	}

	refreshed, err := oauthConfig.TokenSource(ctx, fileToken).Token()
	if err != nil {
		logger.Warn("Failed to refresh token", zap.Error(err))
		return nil
	}

	if missing := MissingScopes(refreshed); len(missing) > 0 {
		logger.Warn("Refreshed token is missing required scopes, discarding it", zap.Strings("missing", missing))
		if err := DeleteTokenFile(env); err != nil {
			logger.Warn("Failed to delete token file", zap.Error(err))
		}
		return nil
	}

	logger.Debug("Token refreshed")
	if err := SaveTokenToFile(env, refreshed); err != nil {
		logger.Warn("Failed to save refreshed token", zap.Error(err))
	}
	return refreshed
}

// listenForAuthCallback starts a local HTTP server and waits for the OAuth callback
func listenForAuthCallback(ctx context.Context) (string, error) {
	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	r := chi.NewRouter()
	r.Get(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- errors.New("no authorization code received")
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><h1>Authorization successful</h1><p>You can close this window.</p></body></html>`)
		codeChan <- code
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", AuthPort),
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var code string
	var authErr error
	select {
	case code = <-codeChan:
	case authErr = <-errChan:
	case <-timeoutCtx.Done():
		authErr = fmt.Errorf("authorization timeout after %v", authTimeout)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	if authErr != nil {
		return "", authErr
	}
	return code, nil
}

// ClearToken clears the token from memory cache
func ClearToken() {
	tokenCacheMu.Lock()
	defer tokenCacheMu.Unlock()
	tokenCache = nil
}

// TokenFilePath returns the path of the token file for the given environment
func TokenFilePath(env string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if env == "" {
		env = "default"
	}
	return filepath.Join(homeDir, tokenDirName, fmt.Sprintf("token-%s.json", env)), nil
}

// LoadTokenFromFile loads the stored token for env. A missing file returns nil, nil.
func LoadTokenFromFile(env string) (*oauth2.Token, error) {
	tokenPath, err := TokenFilePath(env)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &token, nil
}

// SaveTokenToFile stores the token for env, owner read/write only
func SaveTokenToFile(env string, token *oauth2.Token) error {
	tokenPath, err := TokenFilePath(env)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(tokenPath), tokenDirPerms); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(tokenPath, data, tokenFilePerms); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// DeleteTokenFile deletes the token file for the given environment
func DeleteTokenFile(env string) error {
	tokenPath, err := TokenFilePath(env)
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}

	return nil
}
