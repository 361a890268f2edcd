// Package environment names the deployment stage (development, staging,
// production) and carries it through request contexts.
package environment
