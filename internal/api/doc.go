// Package api implements the backend-for-frontend of the Eventify web
// client: form validation and password strength endpoints, cookie-based
// sessions and a JSON facade over the Eventify GraphQL API.
//
// Every browser is identified by an opaque eventify_sid cookie. Its
// authentication token and user are kept in an auth.Store under keys
// namespaced by that ID, so the GraphQL token never reaches the browser.
// Credential endpoints are rate limited per client IP and path.
//
//	cfg := api.Config{}
//	config.MustLoad(&cfg)
//	log := logger.New(logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.ServiceName))
//	if err := api.Serve(ctx, cfg, log); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package api
