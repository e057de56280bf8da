package gcalendar

import "errors"

// ErrNoRefreshToken means Google already granted this client; the grant must be
// revoked at https://myaccount.google.com/permissions before a new token is issued.
var ErrNoRefreshToken = errors.New("google did not return a refresh token; revoke the app access and authorize again")
