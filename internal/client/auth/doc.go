// Package auth holds the "current identity" signal the dispatcher gates on.
// The identity provider itself is external: it hands the client a signed
// identity token which ParseIdentityToken turns into a models.Identity.
package auth
