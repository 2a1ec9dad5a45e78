// Package datastore is a client for a remote per-user key/value data store
// used to persist a single user's form answers under a service-scoped
// namespace. Payloads are encrypted per user before leaving the process and
// every request is authenticated with a short-lived signed access token.
//
// Basic usage:
//
//	cfg, err := config.New(serviceSecret, serviceToken, "my-service", "https://userdatastore")
//	if err != nil {
//		return err
//	}
//	client, err := datastore.New(cfg)
//	if err != nil {
//		return err
//	}
//	if err := client.SetData(ctx, userID, userToken, answers, logger); err != nil {
//		return err
//	}
//	payload, err := client.GetData(ctx, userID, userToken, logger)
package datastore
