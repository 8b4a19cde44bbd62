package api

import (
	"context"
	"encoding/json"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against the backend and returns the session token
// from the response payload. The caller decides where to store it; the
// facade itself reads tokens only through its TokenProvider.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	out, err := doPost[loginResponse](ctx, c, "/api/login/", loginRequest{Email: email, Password: password}, nil, nil)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

type verificationRequest struct {
	Token string `json:"token"`
}

type verificationResponse struct {
	Success bool `json:"success"`
}

// CheckTokenValid asks the backend whether the currently held token is
// valid. The token travels in the body, not as a header: validity is
// unknown, so this probe bypasses header injection.
//
// The backend overloads HTTP status for business-logic signaling here:
// 401/403 are the normal negative outcome of this probe, not transport
// failures. The decision is two-stage: statuses {2xx, 401, 403} mean the
// server was reached and the auth outcome is known (anything else fails),
// then only the payload success flag decides validity. A 2xx with
// {"success": false} is still invalid.
func (c *Client) CheckTokenValid(ctx context.Context) (bool, error) {
	acceptAuthOutcome := func(code int) bool {
		return accept2xx(code) || code == 401 || code == 403
	}
	raw, err := doPostRaw(ctx, c, "/api/verification/",
		verificationRequest{Token: c.tokens.Token()}, nil, nil, acceptAuthOutcome)
	if err != nil {
		return false, err
	}
	var out verificationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		// An accepted status with a payload that carries no success flag is
		// a negative verdict, not a failure.
		return false, nil
	}
	return out.Success, nil
}
