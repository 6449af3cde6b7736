package www

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/mardo/elpriskollen-go/types"
)

const settingsSessionName = "elpriskollen_settings"

// SettingsStore keeps per-visitor cost settings in a cookie session,
// falling back to the configured defaults for new visitors.
type SettingsStore struct {
	store    *sessions.CookieStore
	defaults types.CostSettings
}

func NewSettingsStore(sessionKey string, defaults types.CostSettings) *SettingsStore {
	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SettingsStore{store: store, defaults: defaults}
}

func (s *SettingsStore) Load(r *http.Request) types.CostSettings {
	sess, err := s.store.Get(r, settingsSessionName)
	if err != nil || sess.IsNew {
		return s.defaults
	}

	cs := s.defaults
	if v, ok := sess.Values["network_fee"].(float64); ok {
		cs.NetworkFee = v
	}
	if v, ok := sess.Values["supplier_markup"].(float64); ok {
		cs.SupplierMarkup = v
	}
	if v, ok := sess.Values["show_real_cost"].(bool); ok {
		cs.ShowRealCost = v
	}
	return cs
}

func (s *SettingsStore) Save(w http.ResponseWriter, r *http.Request, cs types.CostSettings) error {
	sess, err := s.store.Get(r, settingsSessionName)
	if err != nil {
		sess, err = s.store.New(r, settingsSessionName)
		if err != nil {
			return err
		}
	}

	sess.Values["network_fee"] = cs.NetworkFee
	sess.Values["supplier_markup"] = cs.SupplierMarkup
	sess.Values["show_real_cost"] = cs.ShowRealCost
	return sess.Save(r, w)
}
