// Package tracing wraps OpenTelemetry for the registry. Applications that do
// not install a provider get no-op spans.
package tracing
