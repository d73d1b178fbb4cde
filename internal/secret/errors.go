package secret

import "errors"

// ErrTooShort is returned by Fingerprint if the decoded secret is shorter than required
var ErrTooShort = errors.New("secret too short")
