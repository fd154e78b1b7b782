package gmail

import (
	"context"
	"encoding/json"
	"time"

	ghostwriter "github.com/Molefas/ghost-writer"
	"github.com/Molefas/ghost-writer/store"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// RedirectURL is the OAuth2 redirect target. The user copies the code from
// the redirected URL and hands it to Exchange.
const RedirectURL = "http://localhost"

// refreshWindow is how close to expiry an access token is refreshed.
const refreshWindow = 60 * time.Second

var _ ghostwriter.MailAuthenticator = (*Authenticator)(nil)

// Authenticator runs the OAuth2 installed-app flow for read-only Gmail
// access and persists tokens in the store.
type Authenticator struct {
	Store        ghostwriter.Store
	ClientID     string
	ClientSecret string

	// Endpoint overrides the Google OAuth2 endpoint when set.
	Endpoint oauth2.Endpoint

	// ServiceOptions are passed to the Gmail service after the token source.
	ServiceOptions []option.ClientOption
}

// storedToken is the persisted token record. ExpiryDate is in Unix milliseconds.
type storedToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiryDate   int64  `json:"expiry_date"`
	TokenType    string `json:"token_type"`
}

func (a *Authenticator) config() (*oauth2.Config, error) {
	if a.ClientID == "" || a.ClientSecret == "" {
		return nil, ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED, "missing GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET")
	}
	endpoint := a.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}
	return &oauth2.Config{
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		RedirectURL:  RedirectURL,
		Scopes:       []string{gmailapi.GmailReadonlyScope},
		Endpoint:     endpoint,
	}, nil
}

// AuthURL returns the consent URL. Offline access with a forced consent
// prompt guarantees a refresh token on exchange.
func (a *Authenticator) AuthURL() (string, error) {
	cfg, err := a.config()
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL("ghostwriter", oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// Exchange trades an authorization code for tokens and stores them.
func (a *Authenticator) Exchange(ctx context.Context, code string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED, "token exchange failed: %v", err)
	}
	if tok.AccessToken == "" {
		return ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED, "token exchange did not return an access token")
	}
	if tok.RefreshToken == "" {
		return ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED,
			"token exchange did not return a refresh token; make sure consent was shown with offline access")
	}
	return a.saveToken(ctx, tok)
}

// Client returns a Gmail client built from the stored tokens. The access
// token is refreshed and re-stored when it expires within a minute.
func (a *Authenticator) Client(ctx context.Context) (ghostwriter.MailClient, error) {
	tok, err := a.loadToken(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	// The inner source holds only the refresh token so that it always
	// refreshes; the outer source decides when, using refreshWindow.
	refresher := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: tok.RefreshToken})
	ts := oauth2.ReuseTokenSourceWithExpiry(tok, refresher, refreshWindow)
	fresh, err := ts.Token()
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED, "refreshing Gmail token: %v", err)
	}
	if fresh.AccessToken != tok.AccessToken {
		if fresh.RefreshToken == "" {
			fresh.RefreshToken = tok.RefreshToken
		}
		if err := a.saveToken(ctx, fresh); err != nil {
			return nil, err
		}
	}

	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, a.ServiceOptions...)
	svc, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINTERNAL, "creating Gmail service: %v", err)
	}
	return NewClient(svc), nil
}

func (a *Authenticator) loadToken(ctx context.Context) (*oauth2.Token, error) {
	data, err := a.Store.Get(ctx, store.GmailTokensKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED,
			"Gmail is not authenticated; run `ghostwriter gmail auth` first")
	}
	var st storedToken
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EUNAUTHORIZED, "stored Gmail token is unreadable: %v", err)
	}
	tok := &oauth2.Token{
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
		TokenType:    st.TokenType,
	}
	if st.ExpiryDate > 0 {
		tok.Expiry = time.UnixMilli(st.ExpiryDate)
	}
	return tok, nil
}

func (a *Authenticator) saveToken(ctx context.Context, tok *oauth2.Token) error {
	st := storedToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
	}
	if st.TokenType == "" {
		st.TokenType = "Bearer"
	}
	if tok.Expiry.IsZero() {
		st.ExpiryDate = time.Now().Add(time.Hour).UnixMilli()
	} else {
		st.ExpiryDate = tok.Expiry.UnixMilli()
	}
	data, err := json.Marshal(st)
	if err != nil {
		return ghostwriter.Errorf(ghostwriter.EINTERNAL, "encoding token: %v", err)
	}
	if err := a.Store.Set(ctx, store.GmailTokensKey, data); err != nil {
		return ghostwriter.Errorf(ghostwriter.EPERSIST, "saving Gmail token: %v", err)
	}
	return nil
}
