package auth

import "net/http"

// The two cookies that carry identity between the browser and both
// services.
const (
	AccessCookie  = "user_access_token"
	RefreshCookie = "user_refresh_token"
)

func setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetTokenCookies writes both tokens onto the response. Tokens travel only
// in cookies, never in response bodies.
func SetTokenCookies(w http.ResponseWriter, pair TokenPair) {
	setCookie(w, AccessCookie, pair.Access, int(AccessTokenTTL.Seconds()))
	setCookie(w, RefreshCookie, pair.Refresh, int(RefreshTokenTTL.Seconds()))
}

func ClearTokenCookies(w http.ResponseWriter) {
	setCookie(w, AccessCookie, "", -1)
	setCookie(w, RefreshCookie, "", -1)
}
