/*
Package hubsdk provides a client SDK for the BabyHub family site service.

# Overview

The SDK wraps the HTTP API in two layers:

  - Client: unauthenticated operations (code verification, health checks,
    one-time bootstrap)
  - Session: authenticated operations carrying a provider session token
    (redeeming codes, profile reads, admin invite management)

Create a Client for public endpoints:

	client := hubsdk.NewClient("https://hub.example.com")

	// Look up the role a code would grant before signup
	info, err := client.VerifyInvite(ctx, "A3F9K2")

	// One-time bootstrap of a fresh deployment
	codes, err := client.Bootstrap(ctx, bootstrapToken)

Wrap a session token for authenticated calls:

	session := client.WithToken(accessToken)

	me, err := session.Me(ctx)
	role, err := session.RedeemInvite(ctx, "A3F9K2", "Auntie May")

	// Admin operations
	invite, err := session.CreateInvite(ctx, hubsdk.CreateInviteRequest{
		Role:      "family",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
	})

Errors from the API are returned as *hubsdk.APIError carrying the HTTP
status and the server's error code.
*/
package hubsdk
