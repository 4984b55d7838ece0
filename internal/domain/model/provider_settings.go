//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// ProviderSettingsKey is the namespaced settings-store key holding the OAuth
// provider configuration. The record is read and overwritten wholesale at
// startup; code-defined values always win over anything stored.
const ProviderSettingsKey = "plugin_users_permissions_grant"

// ProviderOAuthConfig is the persisted OAuth provider configuration record.
type ProviderOAuthConfig struct {
	Enabled      bool     `json:"enabled"`
	ClientKey    string   `json:"client_key"`
	ClientSecret string   `json:"client_secret"`
	CallbackPath string   `json:"callback_path"`
	RedirectURI  string   `json:"redirect_uri"`
	Scopes       []string `json:"scopes"`
}
