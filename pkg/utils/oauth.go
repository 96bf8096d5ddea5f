package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/SojoC/nexo-ppeam/internal/config"
)

const (
	AuthPort       = 3000
	authTimeout    = 5 * time.Minute
	callbackPath   = "/oauth/callback"
	tokenDirName   = ".nexo-ppeam/tokens"
	tokenFilePerms = 0600 // Read/write for owner only
	tokenDirPerms  = 0700 // Read/write/execute for owner only
)

// Swapped for a test server in tests
var tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var (
	tokenCache   *oauth2.Token
	tokenCacheMu sync.Mutex
)

// ScopeSheets is the only Google API scope the application needs; both the
// roster reader and the schedule publisher work on spreadsheets
const ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"

// GetOAuthConfig creates an OAuth2 config from the OAuth client configuration
func GetOAuthConfig(oauthCfg *config.OAuthClientConfig) (*oauth2.Config, error) {
	oauthConfigJSON, err := json.Marshal(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oauth config: %w", err)
	}

	googleConfig, err := google.ConfigFromJSON(oauthConfigJSON, ScopeSheets)
	if err != nil {
		return nil, fmt.Errorf("failed to create google config: %w", err)
	}

	// Override redirect URI to use our local server
	googleConfig.RedirectURL = fmt.Sprintf("http://localhost:%d%s", AuthPort, callbackPath)

	return googleConfig, nil
}

// validateTokenScopes checks that the token carries the spreadsheet scope by
// calling Google's tokeninfo endpoint. A cached token from a stale grant fails
// here with a clear message instead of an opaque API error on first use.
func validateTokenScopes(ctx context.Context, token *oauth2.Token) error {
	req, err := http.NewRequestWithContext(ctx, "GET", tokenInfoURL+"?access_token="+token.AccessToken, nil)
	if err != nil {
		return fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tokeninfo request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenInfo struct {
		Scope string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		return fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	grantedScopes := strings.Split(tokenInfo.Scope, " ")
	if !slices.Contains(grantedScopes, ScopeSheets) {
		return fmt.Errorf("token is missing required scope %s\nPlease ensure all permissions are granted during the OAuth flow", ScopeSheets)
	}

	return nil
}

// GetTokenWithFlow performs the full OAuth flow including user authorization
// This function is thread-safe and ensures only one OAuth flow runs at a time
// Tokens are persisted to disk for the given environment and refreshed when expired
func GetTokenWithFlow(ctx context.Context, oauthConfig *oauth2.Config, env string) (*oauth2.Token, error) {
	tokenCacheMu.Lock()
	defer tokenCacheMu.Unlock()

	// Check if token is already cached in memory and valid
	if tokenCache != nil && tokenCache.Valid() {
		return tokenCache, nil
	}

	// Try to load token from file
	fileToken, err := LoadTokenFromFile(env)
	if err != nil {
		fmt.Printf("Warning: failed to load token from file: %v\n", err)
	}

	if fileToken != nil {
		if fileToken.Valid() {
			// Validate that the cached token still has the required scope
			if err := validateTokenScopes(ctx, fileToken); err != nil {
				fmt.Printf("Cached token is missing required scopes: %v\n", err)
				fmt.Println("Deleting invalid token and starting new OAuth flow...")
				DeleteTokenFile(env)
			} else {
				tokenCache = fileToken
				return fileToken, nil
			}
		} else if fileToken.RefreshToken != "" {
			// Token expired but might be refreshable
			tokenSource := oauthConfig.TokenSource(ctx, fileToken)
			refreshedToken, err := tokenSource.Token()
			if err == nil && refreshedToken.Valid() {
				if err := validateTokenScopes(ctx, refreshedToken); err != nil {
					fmt.Printf("Refreshed token is missing required scopes: %v\n", err)
					fmt.Println("Deleting invalid token and starting new OAuth flow...")
					DeleteTokenFile(env)
				} else {
					if err := SaveTokenToFile(env, refreshedToken); err != nil {
						fmt.Printf("Warning: failed to save refreshed token: %v\n", err)
						// Continue anyway - token is still valid in memory
					}
					tokenCache = refreshedToken
					return refreshedToken, nil
				}
			}
		}
	}

	// No valid cached token - perform OAuth flow
	fmt.Println("No valid token found - starting OAuth flow")

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

	// Validate before saving so a partial grant never gets cached
	if err := validateTokenScopes(ctx, token); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if err := SaveTokenToFile(env, token); err != nil {
		fmt.Printf("Warning: failed to save token to file: %v\n", err)
	}

	tokenCache = token
	return token, nil
}

// listenForAuthCallback starts a local HTTP server and waits for the OAuth callback
func listenForAuthCallback(ctx context.Context) (string, error) {
	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", AuthPort),
		Handler: mux,
	}

	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
			<html>
				<head><title>Authorization Successful</title></head>
				<body>
					<h1>Authorization successful!</h1>
					<p>You can close this window and return to the application.</p>
				</body>
			</html>
		`)

		codeChan <- code
	})

	// Start server in background
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for code or timeout
	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var code string
	var authErr error

	select {
	case code = <-codeChan:
		// Success
	case authErr = <-errChan:
		// Error during auth
	case <-timeoutCtx.Done():
		authErr = fmt.Errorf("authorization timeout after %v", authTimeout)
	}

	// Shutdown server
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

// getTokenFilePath returns the path to the token file for the given environment
func getTokenFilePath(env string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, tokenDirName, fmt.Sprintf("token-%s.json", env)), nil
}

// LoadTokenFromFile loads an OAuth token from the file system for the given environment
// Returns nil if the file doesn't exist (not an error - just means no cached token)
func LoadTokenFromFile(env string) (*oauth2.Token, error) {
	tokenPath, err := getTokenFilePath(env)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(tokenPath); os.IsNotExist(err) {
		return nil, nil // No token file exists yet
	}

	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &token, nil
}

// SaveTokenToFile saves an OAuth token to the file system for the given environment
func SaveTokenToFile(env string, token *oauth2.Token) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	tokenDir := filepath.Join(homeDir, tokenDirName)
	if err := os.MkdirAll(tokenDir, tokenDirPerms); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tokenPath, err := getTokenFilePath(env)
	if err != nil {
		return err
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
	tokenPath, err := getTokenFilePath(env)
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}

	return nil
}
