// Package auth keeps track of who is signed in.
//
// A Manager owns the current Session (token plus user) for one client and
// persists it to a Store under the keys "eventify_token" and "eventify_user".
// The remote side is abstracted by Authenticator; the eventapi package
// provides the production implementation.
//
// Three stores are provided: MemoryStore for tests, FileStore for the CLI
// (one JSON document under the user config directory) and RedisStore for the
// web server, where WithNamespace separates browser sessions:
//
//	mgr := auth.NewManager(auth.NewRedisStore(storage), authn, auth.WithNamespace(sid))
//	if err := mgr.Restore(ctx); err != nil {
//		return err
//	}
//	if !mgr.IsAuthenticated() {
//		res := mgr.Login(ctx, email, password)
//		...
//	}
//
// Tokens that are JWTs carrying an exp claim count as signed out once they
// expire. Signatures are not verified here; that is the API's job.
package auth
